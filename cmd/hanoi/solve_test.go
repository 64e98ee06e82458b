package main

import "testing"

func TestParseDisks(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"64", 64, false},
		{"65", 0, true},
		{"70", 0, true},
		{"three", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDisks(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDisks(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDisks(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}
