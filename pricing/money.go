package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an amount in integer minor units (cents). All engine arithmetic
// stays in cents; conversion to decimal happens only at the JSON boundary.
type Money int64

// FromMajor converts a decimal currency amount (e.g. 19.99) to cents.
func FromMajor(v float64) Money {
	return Money(math.Round(v * 100))
}

// Major returns the amount in major units.
func (m Money) Major() float64 {
	return float64(m) / 100
}

// MulInt multiplies the amount by an integer factor (nights, rooms, guests).
func (m Money) MulInt(n int) Money {
	return m * Money(n)
}

// Percent returns p percent of the amount, rounded to the nearest cent.
func (m Money) Percent(p float64) Money {
	return Money(math.Round(float64(m) * p / 100))
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Major(), 'f', 2, 64)
}

// MarshalJSON renders the amount as a plain 2-decimal number, matching the
// wire format the API exchanges for currency values.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid money value %q: %w", string(data), err)
	}
	*m = FromMajor(v)
	return nil
}
