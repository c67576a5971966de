package utils

import "testing"

func TestParseIntDefault(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		def     int
		want    int
		wantErr bool
	}{
		{"empty uses default", "", 100, 100, false},
		{"numeric", "42", 0, 42, false},
		{"negative numeric", "-3", 0, -3, false},
		{"garbage", "abc", 0, 0, true},
		{"float", "1.5", 0, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIntDefault(tc.in, tc.def)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}
