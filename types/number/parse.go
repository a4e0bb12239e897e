package number

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseError reports a token that is not a decimal unsigned 64-bit integer.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing \"%s\"", e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseUint64 parses a single decimal token. Signs, whitespace, digit
// separators and base prefixes are rejected.
func ParseUint64(token string) (uint64, error) {
	n, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, &ParseError{Token: token, Err: err}
	}

	return n, nil
}

// ParseUint64s parses every token in order. It stops at the first invalid
// token and returns its *ParseError without any of the values parsed so far.
func ParseUint64s(tokens []string) ([]uint64, error) {
	ns := make([]uint64, 0, len(tokens))
	for _, token := range tokens {
		n, err := ParseUint64(token)
		if err != nil {
			return nil, err
		}

		ns = append(ns, n)
	}

	return ns, nil
}

// FormatList renders ns as a bracketed, comma-space separated list, e.g.
// "[2, 4, 6, 8]".
func FormatList[T constraints.Unsigned](ns []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range ns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(n), 10))
	}
	sb.WriteByte(']')

	return sb.String()
}
