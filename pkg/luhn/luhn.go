package luhn

import (
	"errors"
)

var (
	ErrEmpty    = errors.New("empty number")
	ErrNotDigit = errors.New("number must contain only digits")
	ErrChecksum = errors.New("invalid checksum")
)

// Validate checks the number against the Luhn algorithm.
func Validate(number string) error {
	if number == "" {
		return ErrEmpty
	}

	var sum int
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return ErrNotDigit
		}

		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	if sum%10 != 0 {
		return ErrChecksum
	}

	return nil
}
