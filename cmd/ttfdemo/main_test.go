package main

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}, false},
		{"00ff0080", color.NRGBA{G: 0xff, A: 0x80}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
