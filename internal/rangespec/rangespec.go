// Package rangespec implements the compact range specification language used
// to select numbered top-level asset subdirectories for a batch run.
//
// A spec names two endpoints separated by "..", each a shared non-numeric
// prefix followed by a zero-padded number. "000-000..000-010" expands to the
// ten names "000-000" through "000-009": the right endpoint is exclusive.
package rangespec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSpec is wrapped by every expansion failure so callers can test
// for the class with errors.Is while still seeing which rule was broken.
var ErrInvalidSpec = errors.New("invalid range spec")

// Token is a string split into its non-numeric prefix and trailing number.
// Width is the length of the original digit run, preserving leading zeros
// for output re-padding ("part007" splits to prefix "part", num 7, width 3).
// A token without trailing digits has HasNum false and Width 0; it cannot
// anchor a range.
type Token struct {
	Prefix string
	Num    int
	Width  int
	HasNum bool
}

// Split separates the longest trailing run of ASCII digits from s. It is
// total: strings without trailing digits come back as prefix-only tokens.
func Split(s string) Token {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return Token{Prefix: s}
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		// Digit run overflows int.
		return Token{Prefix: s}
	}
	return Token{Prefix: s[:i], Num: n, Width: len(s) - i, HasNum: true}
}

// endpoint splits a range endpoint and rejects the ones that cannot anchor a
// range, distinguishing a missing number from one too large for int.
func endpoint(s string) (Token, error) {
	t := Split(s)
	if t.HasNum {
		return t, nil
	}
	if len(s) > 0 && s[len(s)-1] >= '0' && s[len(s)-1] <= '9' {
		return t, fmt.Errorf("%w: number too large: %q", ErrInvalidSpec, s)
	}
	return t, fmt.Errorf("%w: endpoint %q must end with a number", ErrInvalidSpec, s)
}

// Expand turns a two-endpoint spec into the ordered sequence of directory
// names it denotes. The interval is half-open: "n..n" is empty, and callers
// wanting an inclusive upper bound must pass one past it. All outputs share
// the endpoints' prefix and are zero-padded to the wider endpoint's width
// (padding never truncates: numbers longer than the width render in full).
func Expand(spec string) ([]string, error) {
	left, right, ok := strings.Cut(spec, "..")
	if !ok {
		return nil, fmt.Errorf("%w: %q must contain %q", ErrInvalidSpec, spec, "..")
	}

	lt, err := endpoint(left)
	if err != nil {
		return nil, err
	}
	rt, err := endpoint(right)
	if err != nil {
		return nil, err
	}

	if lt.Prefix != rt.Prefix {
		return nil, fmt.Errorf("%w: prefixes differ: %q vs %q", ErrInvalidSpec, lt.Prefix, rt.Prefix)
	}
	if lt.Num > rt.Num {
		return nil, fmt.Errorf("%w: start %d is greater than end %d", ErrInvalidSpec, lt.Num, rt.Num)
	}

	width := lt.Width
	if rt.Width > width {
		width = rt.Width
	}

	names := make([]string, 0, rt.Num-lt.Num)
	for i := lt.Num; i < rt.Num; i++ {
		names = append(names, fmt.Sprintf("%s%0*d", lt.Prefix, width, i))
	}
	return names, nil
}
