// Package money provides fixed-point handling of monetary amounts.
//
// Amounts are stored as integer cents so that arithmetic is exact; float64
// is never used for calculations, only squirrel/pgx see the raw int64.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount is returned when a string cannot be parsed as a
// two-decimal monetary amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is a monetary amount in cents.
type Money int64

// FromCents wraps a raw cent value.
func FromCents(c int64) Money {
	return Money(c)
}

// Cents returns the raw cent value.
func (m Money) Cents() int64 {
	return int64(m)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m > 0
}

// ParseDecimal converts a decimal string to Money with half-up rounding
// on the third fractional digit. Both dot (12.34) and comma (12,34)
// separators are accepted. A leading minus sign is allowed; account
// baselines and adjustments can legitimately be negative.
func ParseDecimal(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
		// A separator requires fractional digits; "12." is malformed.
		if fracPart == "" {
			return 0, ErrInvalidAmount
		}
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	// First two fractional digits are cents; half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	const maxCents = 1<<63 - 1
	if iv > maxCents/100 || (iv == maxCents/100 && fracCents > maxCents%100) {
		return 0, ErrInvalidAmount
	}

	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return Money(cents), nil
}

// String renders the amount as a decimal with exactly two fractional digits.
func (m Money) String() string {
	c := int64(m)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON encodes the amount as a decimal string, matching the wire
// format of the API ("123.45").
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON string ("12.34") or a bare number
// (12.34). The raw token is parsed as text so the value never passes
// through float64.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return ErrInvalidAmount
		}
		s = unquoted
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
