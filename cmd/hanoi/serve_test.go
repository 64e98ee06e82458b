package main

import "testing"

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23235", "23235"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"localhost", "localhost"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
