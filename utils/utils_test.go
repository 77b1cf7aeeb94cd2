package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0535 109 10 02":  "5351091002",
		"+90 535 1091002": "5351091002",
		"5351091002":      "5351091002",
		"90 535 109 1002": "5351091002",
		"(535) 109-10-02": "5351091002",
		"":                "",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizePhone(input), "input %q", input)
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+90 535 109 10 02", FormatPhone("5351091002"))
	assert.Equal(t, "12345", FormatPhone("12345"), "non-canonical input returned unchanged")
	assert.Equal(t, "", FormatPhone(""))
}

func TestValidEmail(t *testing.T) {
	valid := []string{"", "a@b.com", "first.last@example.co", "x+tag@sub.domain.org"}
	for _, email := range valid {
		assert.Truef(t, ValidEmail(email), "expected %q valid", email)
	}

	invalid := []string{"a@b", "a b@c.com", "@b.com", "a@", "a@@b.com"}
	for _, email := range invalid {
		assert.Falsef(t, ValidEmail(email), "expected %q invalid", email)
	}
}

func TestGenerateReportNo(t *testing.T) {
	ts := time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)
	got := GenerateReportNo(ts)

	want := fmt.Sprintf("SR-260831-%03d", ts.Unix()%1000)
	assert.Equal(t, want, got)
	assert.Regexp(t, `^SR-\d{6}-\d{3}$`, got)
}

func TestDayBounds(t *testing.T) {
	start, ok := DayStart("2026-08-31")
	require.True(t, ok)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 31, start.Day())

	end, ok := DayEnd("2026-08-31")
	require.True(t, ok)
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.After(start))

	_, ok = DayStart("31/08/2026")
	assert.False(t, ok)
}
