package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"plain", "12.34", 1234},
		{"comma separator", "12,34", 1234},
		{"integer", "100", 10000},
		{"single fractional digit", "5.5", 550},
		{"bare fraction", ".75", 75},
		{"third digit rounds up", "1.005", 101},
		{"third digit rounds down", "1.004", 100},
		{"extra digits ignored after rounding", "2.99999", 300},
		{"negative", "-7.25", -725},
		{"zero", "0", 0},
		{"zero with fraction", "0.00", 0},
		{"whitespace trimmed", "  19.90  ", 1990},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}

func TestParseDecimalRejects(t *testing.T) {
	inputs := []string{
		"",
		" ",
		".",
		"12.",
		"0.",
		"-",
		"+5",
		"-+5",
		"1.2.3",
		"abc",
		"12.3x",
		"1e5",
		"92233720368547758.08",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDecimal(input)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.34", FromCents(1234).String())
	assert.Equal(t, "0.05", FromCents(5).String())
	assert.Equal(t, "-3.50", FromCents(-350).String())
	assert.Equal(t, "0.00", FromCents(0).String())
	assert.Equal(t, "1000.00", FromCents(100000).String())
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(FromCents(1999))
	require.NoError(t, err)
	assert.Equal(t, `"19.99"`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"quoted string", `"12.34"`, 1234},
		{"quoted with comma", `"12,34"`, 1234},
		{"bare number", `12.34`, 1234},
		{"bare integer", `100`, 10000},
		{"negative string", `"-5.00"`, -500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.input), &m))
			assert.Equal(t, tt.want, m.Cents())
		})
	}
}

func TestUnmarshalJSONRejects(t *testing.T) {
	for _, input := range []string{`"abc"`, `""`, `true`, `{}`} {
		var m Money
		assert.Error(t, json.Unmarshal([]byte(input), &m), "input %s", input)
	}
}

func TestRoundTrip(t *testing.T) {
	// String output always parses back to the same value.
	for _, cents := range []int64{0, 1, 99, 100, 12345, -12345, 999999999} {
		m := FromCents(cents)
		back, err := ParseDecimal(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
}

func TestIsPositive(t *testing.T) {
	assert.True(t, FromCents(1).IsPositive())
	assert.False(t, FromCents(0).IsPositive())
	assert.False(t, FromCents(-1).IsPositive())
}
