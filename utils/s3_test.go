package utils

import "testing"

func TestObjectKeyFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"profile upload", "https://cdn.example.com/profiles/1700000000-u3.png", "profiles/1700000000-u3.png"},
		{"receipt upload", "https://acc.r2.cloudflarestorage.com/bucket/receipts/1700000000-u3.jpg", "receipts/1700000000-u3.jpg"},
		{"default avatar", "default-avatar.png", ""},
		{"empty", "", ""},
		{"foreign url", "https://example.com/images/logo.png", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ObjectKeyFromURL(tc.url); got != tc.want {
				t.Fatalf("ObjectKeyFromURL(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}
