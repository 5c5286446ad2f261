// Package timezone provides timezone utilities for the application.
//
// Booking dates, attendance windows and payment due dates are all
// anchored to the gym's local day, so every time computation goes
// through this package instead of time.Now directly.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Current time in the gym timezone
//     today := timezone.Today()                // Midnight of the current local day
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to the gym timezone
//
//  2. Formatting times in the gym timezone:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//
//  3. Parsing a booking date in the gym timezone:
//     t, err := timezone.Parse("2006-01-02", "2026-09-15")
//
//  4. Getting the timezone location:
//     loc := timezone.GetLocation()
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "America/Argentina/Buenos_Aires", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
