package util

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{"zero", 0, "$0"},
		{"single digit", 7, "$7"},
		{"three digits", 999, "$999"},
		{"four digits", 1000, "$1,000"},
		{"six digits", 123456, "$123,456"},
		{"seven digits", 1234567, "$1,234,567"},
		{"ten digits", 1234567890, "$1,234,567,890"},
		{"negative", -2500, "-$2,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatMoney(tt.input)
			if result != tt.expected {
				t.Errorf("FormatMoney(%d) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{"zero", 0, "00:00"},
		{"seconds only", 42, "00:42"},
		{"exact minute", 60, "01:00"},
		{"minutes and seconds", 125, "02:05"},
		{"over an hour rolls into minutes", 3723, "62:03"},
		{"negative clamps to zero", -5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatSeconds(tt.input)
			if result != tt.expected {
				t.Errorf("FormatSeconds(%d) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
