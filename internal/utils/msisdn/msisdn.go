package msisdn

import (
	"errors"
	"strings"
)

// ErrInvalid is returned for numbers that are not Ghana mobile numbers
var ErrInvalid = errors.New("invalid phone number")

const (
	countryCode      = "233"
	subscriberLen    = 9
	localNumberLen   = subscriberLen + 1
	internationalLen = subscriberLen + len(countryCode)
)

// Normalize converts a Ghana mobile number to its 10-digit local form.
// Accepted inputs: 0XXXXXXXXX, 233XXXXXXXXX, +233XXXXXXXXX, with optional
// spaces or dashes.
func Normalize(raw string) (string, error) {
	number := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(raw))
	number = strings.TrimPrefix(number, "+")

	if number == "" {
		return "", ErrInvalid
	}

	for _, ch := range number {
		if ch < '0' || ch > '9' {
			return "", ErrInvalid
		}
	}

	var subscriber string
	switch {
	case len(number) == localNumberLen && number[0] == '0':
		subscriber = number[1:]
	case len(number) == internationalLen && strings.HasPrefix(number, countryCode):
		subscriber = number[len(countryCode):]
	default:
		return "", ErrInvalid
	}

	// Subscriber numbers never start with 0
	if subscriber[0] == '0' {
		return "", ErrInvalid
	}

	return "0" + subscriber, nil
}

// Valid reports whether raw can be normalized
func Valid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
