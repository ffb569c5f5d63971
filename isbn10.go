// Package isbn10 validates ISBN-10 book identifiers.
//
// A candidate is valid when it matches the ISBN-10 surface form, nine digits
// followed by a check character (0-9 or X), with optional hyphens after the
// first digit, after the fourth digit and before the check character, and its
// weighted checksum is divisible by 11.
package isbn10

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	isbnerrors "github.com/lepinkainen/isbn10/internal/errors"
)

// Length is the number of characters in an ISBN-10 once hyphens are removed.
const Length = 10

// ErrInvalidISBN is returned by Normalize for candidates that are not a valid ISBN-10.
var ErrInvalidISBN = errors.New("not a valid ISBN-10")

var isbnPattern = regexp.MustCompile(`^[0-9]-?[0-9]{3}-?[0-9]{5}-?[0-9Xx]$`)

// IsValid reports whether candidate is a valid ISBN-10.
//
// An empty or whitespace-only candidate is not an ISBN at all and returns an
// *InvalidArgumentError. Every other input returns a nil error.
func IsValid(candidate string) (bool, error) {
	if strings.TrimSpace(candidate) == "" {
		return false, isbnerrors.NewInvalidArgumentError("candidate", "must not be empty or whitespace")
	}

	if !isbnPattern.MatchString(candidate) {
		slog.Debug("ISBN rejected", "isbn", candidate, "reason", "grammar")
		return false, nil
	}

	if checksum(digitsOf(candidate)) != 0 {
		slog.Debug("ISBN rejected", "isbn", candidate, "reason", "checksum")
		return false, nil
	}

	return true, nil
}

// Normalize returns the canonical ten-character form of a valid ISBN-10:
// hyphens removed and the check character upper-cased.
//
// Only the fixed D-DDD-DDDDD-C hyphenation is accepted. Registration-group
// hyphenation with other group lengths, such as 0-8044-2957-X, is rejected
// with ErrInvalidISBN.
func Normalize(candidate string) (string, error) {
	valid, err := IsValid(candidate)
	if err != nil {
		return "", err
	}
	if !valid {
		return "", ErrInvalidISBN
	}

	return strings.ToUpper(strings.ReplaceAll(candidate, "-", "")), nil
}

// digitsOf converts a grammar-checked candidate into its positional values.
// The check character X maps to 10.
func digitsOf(candidate string) [Length]int {
	var digits [Length]int
	stripped := strings.ReplaceAll(candidate, "-", "")
	for i := 0; i < Length; i++ {
		c := stripped[i]
		if c == 'X' || c == 'x' {
			digits[i] = 10
			continue
		}
		digits[i] = int(c - '0')
	}
	return digits
}

// checksum returns the weighted sum mod 11, weighting positions 10 down to 1
// from the left. A valid ISBN-10 has checksum 0.
func checksum(digits [Length]int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (Length - i)
	}
	return sum % 11
}
