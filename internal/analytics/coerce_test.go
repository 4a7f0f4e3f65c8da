package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	cases := []struct {
		in       string
		expected float64
	}{
		{in: "12.5", expected: 12.5},
		{in: "12.5 km", expected: 12.5},
		{in: "  42  ", expected: 42},
		{in: "-3.5", expected: -3.5},
		{in: "2,600", expected: 2600},
		{in: "", expected: 0},
		{in: "abc", expected: 0},
		{in: "--", expected: 0},
		{in: ".", expected: 0},
		{in: "1.2.3", expected: 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, ToNumber(tc.in), "ToNumber(%q)", tc.in)
	}
}

func TestHoursFromTimeOfDay(t *testing.T) {
	cases := []struct {
		in       string
		expected float64
	}{
		{in: "7:45", expected: 7.75},
		{in: "07:30", expected: 7.5},
		{in: "25:99", expected: 23 + 59.0/60}, // out-of-range parts clamp
		{in: "0:00", expected: 0},
		{in: "7.5", expected: 7.5}, // decimal hours pass through
		{in: "9", expected: 9},
		{in: "", expected: 0},
		{in: "late", expected: 0},
	}

	for _, tc := range cases {
		assert.InDelta(t, tc.expected, HoursFromTimeOfDay(tc.in), 1e-9, "HoursFromTimeOfDay(%q)", tc.in)
	}
}

func TestNormalizeTimeOfDay(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{in: "7:45", expected: "07:45"},
		{in: "7", expected: "07:00"},
		{in: "7:5", expected: "07:05"},
		{in: "25:99", expected: "23:59"},
		{in: "00:00", expected: "00:00"},
		{in: "", expected: ""},
		// non-matching input passes through as typed
		{in: "about 8", expected: "about 8"},
		{in: "7:45pm", expected: "7:45pm"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, NormalizeTimeOfDay(tc.in), "NormalizeTimeOfDay(%q)", tc.in)
	}
}
