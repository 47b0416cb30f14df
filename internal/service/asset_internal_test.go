package service

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"photo.png", "photo.png"},
		{"my photo.png", "my_photo.png"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\evil.png`, "evil.png"},
		{"weird<>chars?.png", "weirdchars.png"},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
