// Package base64 inspects data-URI payloads. Profile photos arrive as
// "data:image/png;base64,..." strings and the validator needs the MIME
// type before the payload is decoded and pushed to object storage.
package base64

import "strings"

const (
	uriPrefix      = "data:"
	encodingMarker = ";base64,"
)

// GetContentType extracts the MIME type from a data URI. It returns an
// empty string when the value is not a base64 data URI.
func GetContentType(file string) string {
	start := len(uriPrefix)
	end := strings.Index(file, encodingMarker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
