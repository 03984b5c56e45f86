package util

import (
	"math"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{name: "zero", seconds: 0, expected: "0:00"},
		{name: "under one minute", seconds: 45, expected: "0:45"},
		{name: "rounds to nearest second", seconds: 59.5, expected: "1:00"},
		{name: "minutes and seconds", seconds: 245, expected: "4:05"},
		{name: "hours", seconds: 3723, expected: "1:02:03"},
		{name: "negative", seconds: -3, expected: "0:00"},
		{name: "not a number", seconds: math.NaN(), expected: "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.seconds); got != tt.expected {
				t.Fatalf("FormatDuration(%v) = %s, want %s", tt.seconds, got, tt.expected)
			}
		})
	}
}
