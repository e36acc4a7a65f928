package swiss

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "valid date",
			input:  "15.03.2024",
			want:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "leading and trailing whitespace",
			input:  "  01.12.2023  ",
			want:   time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
		{
			name:   "blank string",
			input:  "   ",
			wantOK: false,
		},
		{
			name:   "two parts only",
			input:  "15.03",
			wantOK: false,
		},
		{
			name:   "four parts",
			input:  "15.03.2024.01",
			wantOK: false,
		},
		{
			name:   "non-numeric component",
			input:  "Date.03.2024",
			wantOK: false,
		},
		{
			name:   "stray header text",
			input:  "Booking text",
			wantOK: false,
		},
		{
			// Out-of-range days roll over instead of failing.
			name:   "31st of April rolls to 1st of May",
			input:  "31.04.2024",
			want:   time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain decimal", input: "45,90", want: 45.90},
		{name: "thousands separator", input: "1'234,00", want: 1234.00},
		{name: "multiple thousands separators", input: "1'234'567,89", want: 1234567.89},
		{name: "integer", input: "12", want: 12},
		{name: "empty", input: "", want: 0},
		{name: "blank", input: "   ", want: 0},
		{name: "junk", input: "n/a", want: 0},
		{name: "negative", input: "-5,25", want: -5.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseNumber(tt.input), 1e-9)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "45,90", FormatNumber(45.9))
	assert.Equal(t, "1234,50", FormatNumber(1234.5))
	assert.Equal(t, "", FormatNumber(0))
	assert.Equal(t, "-5,25", FormatNumber(-5.25))
}

func TestNumberRoundTrip(t *testing.T) {
	// Export then import must reproduce the value bit-for-bit.
	for _, v := range []float64{1234.5, 45.9, 0.05, 99999.99} {
		assert.Equal(t, v, ParseNumber(FormatNumber(v)))
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05.03.2024", FormatDate(d))

	back, ok := ParseDate(FormatDate(d))
	assert.True(t, ok)
	assert.True(t, back.Equal(d))
}
