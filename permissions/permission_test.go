package permissions_test

import (
	"slices"
	"testing"

	"fauget/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	if data == nil {
		t.Fatal("expected embedded permissions to load")
	}
	if len(data.Endpoints) == 0 {
		t.Fatal("expected at least one endpoint rule")
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name          string
		path          string
		method        string
		skip          bool
		expectedRoles []string
	}{
		{
			name:   "health endpoint is public",
			path:   "/api/health",
			method: "GET",
			skip:   true,
		},
		{
			name:   "login is public",
			path:   "/api/auth/login",
			method: "POST",
			skip:   true,
		},
		{
			name:          "booking creation needs only authentication",
			path:          "/api/bookings/create",
			method:        "POST",
			expectedRoles: []string{},
		},
		{
			name:          "admin reset-password is role gated",
			path:          "/api/admin/users/{id}/reset-password",
			method:        "PUT",
			expectedRoles: []string{"admin", "developer"},
		},
		{
			name:          "settings update is developer only",
			path:          "/api/admin/gym-settings",
			method:        "PUT",
			expectedRoles: []string{"developer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perm := data.FindPermissions(tt.path, tt.method)

			if perm.Path != tt.path {
				t.Fatalf("expected rule for %s %s to exist, got %+v", tt.method, tt.path, perm)
			}
			if perm.Skip != tt.skip {
				t.Errorf("expected skip to be %v, got %v", tt.skip, perm.Skip)
			}
			if !tt.skip && !slices.Equal(perm.Permissions, tt.expectedRoles) {
				t.Errorf("expected roles %v, got %v", tt.expectedRoles, perm.Permissions)
			}
		})
	}
}

func TestFindPermissions_UnlistedRoute(t *testing.T) {
	data := permissions.Get()

	perm := data.FindPermissions("/api/unknown", "GET")

	if perm.Path != "" || perm.Skip {
		t.Errorf("expected zero permission for unlisted route, got %+v", perm)
	}
}
