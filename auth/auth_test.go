// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIssueSessionToken(t *testing.T) {
	token := IssueSessionToken("admin@example.com", "secret")

	if token == "" {
		t.Fatal("IssueSessionToken() returned empty string")
	}

	// Should be deterministic
	if token != IssueSessionToken("admin@example.com", "secret") {
		t.Error("IssueSessionToken() is not deterministic")
	}

	// Should be URL-safe (no padding)
	if strings.Contains(token, "=") {
		t.Error("IssueSessionToken() contains padding characters")
	}

	if token == IssueSessionToken("admin@example.com", "other-secret") {
		t.Error("IssueSessionToken() produced same token for different secrets")
	}
}

func TestParseSessionToken(t *testing.T) {
	secret := "test-secret"
	valid := IssueSessionToken("admin@example.com", secret)
	forged := IssueSessionToken("admin@example.com", "guess")
	payload, _, _ := strings.Cut(valid, ".")

	tests := []struct {
		name      string
		token     string
		wantEmail string
		wantErr   bool
	}{
		{"valid token", valid, "admin@example.com", false},
		{"wrong secret", forged, "", true},
		{"no separator", "abcdef", "", true},
		{"missing signature", payload + ".", "", true},
		{"tampered payload", "YWRtaW4." + strings.SplitN(valid, ".", 2)[1], "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := ParseSessionToken(tt.token, secret)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSessionToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidSession {
				t.Errorf("ParseSessionToken() error = %v, want %v", err, ErrInvalidSession)
			}
			if email != tt.wantEmail {
				t.Errorf("ParseSessionToken() email = %q, want %q", email, tt.wantEmail)
			}
		})
	}
}

func TestSessionFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		cookie  string
		want    string
		wantErr error
	}{
		{"bearer header", "Bearer abc.def", "", "abc.def", nil},
		{"lowercase scheme", "bearer abc.def", "", "abc.def", nil},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", "", ErrInvalidSession},
		{"empty bearer", "Bearer ", "", "", ErrInvalidSession},
		{"cookie fallback", "", "cookie.token", "cookie.token", nil},
		{"nothing", "", "", "", ErrNoSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/banned", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			got, err := SessionFromRequest(r)
			if err != tt.wantErr {
				t.Fatalf("SessionFromRequest() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SessionFromRequest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	allow := []string{"admin@example.com", " Ops@Example.com "}

	tests := []struct {
		email string
		want  bool
	}{
		{"admin@example.com", true},
		{"ADMIN@example.com", true},
		{"ops@example.com", true},
		{"someone@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAdmin(tt.email, allow); got != tt.want {
			t.Errorf("IsAdmin(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestAuthorize(t *testing.T) {
	secret := "s3cret"
	allow := []string{"admin@example.com"}

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"admin", IssueSessionToken("admin@example.com", secret), false},
		{"not on allowlist", IssueSessionToken("user@example.com", secret), true},
		{"bad signature", IssueSessionToken("admin@example.com", "nope"), true},
		{"no token", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/banned", nil)
			if tt.token != "" {
				r.Header.Set("Authorization", "Bearer "+tt.token)
			}
			email, err := Authorize(r, secret, allow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authorize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && email != "admin@example.com" {
				t.Errorf("Authorize() email = %q", email)
			}
		})
	}
}

func BenchmarkParseSessionToken(b *testing.B) {
	token := IssueSessionToken("admin@example.com", "secret")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseSessionToken(token, "secret")
	}
}
