package domain

import "testing"

func TestParseCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"5", 5, true},
		{" 5 ", 5, true},
		{"1,250", 1250, true},
		{"0", 0, true},
		{"5.0", 0, false},
		{"-5", 0, false},
		{"", 0, false},
		{"  ", 0, false},
		{"abc", 0, false},
		{"12 pieces", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCount(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCount(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseWeight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{"40", 40, true},
		{" 40.25 ", 40.25, true},
		{"5.", 5, true},
		{".5", 0.5, true},
		{"1,234.5", 0, false},
		{"-3.5", 0, false},
		{"1.2.3", 0, false},
		{".", 0, false},
		{"", 0, false},
		{"kg", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseWeight(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseWeight(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
