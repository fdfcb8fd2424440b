package parser

import (
	"fmt"
	"strings"

	"github.com/protocompile/protoparse/ast"
)

// matchError is the low-level failure returned by the combinator primitives
// below when they cannot match at the current position. It is not one of
// the six ErrorKinds from SPEC_FULL.md §7 on its own; composite and driver
// parsers promote it to the appropriate typed *Error when a whole
// alternative (top-level statement, message statement, field, ...) fails to
// match anything.
type matchError struct {
	pos      ast.SourcePos
	expected string
}

func (e *matchError) Error() string {
	return fmt.Sprintf("%s: expected %s", e.pos, e.expected)
}

func noMatch(at Span, expected string) error {
	line, col := at.Pos()
	return &matchError{pos: ast.SourcePos{Line: line, Col: col}, expected: expected}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f':
		return true
	default:
		return false
	}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// isWordByte matches the characters accepted in a bare word token such as
// an enum value name: letters, digits, and underscore.
func isWordByte(b byte) bool {
	return isAlphaNumeric(b) || b == '_'
}

// lit matches a literal string exactly, case-sensitively.
func lit(s string) func(Span) (Span, string, error) {
	return func(in Span) (Span, string, error) {
		if !strings.HasPrefix(in.Remaining(), s) {
			return in, "", noMatch(in, fmt.Sprintf("%q", s))
		}
		return in.advance(len(s)), s, nil
	}
}

// takeWhile1 consumes one or more leading bytes matching pred.
func takeWhile1(pred func(byte) bool, what string) func(Span) (Span, string, error) {
	return func(in Span) (Span, string, error) {
		n := 0
		for n < in.Len() && pred(in.Remaining()[n]) {
			n++
		}
		if n == 0 {
			return in, "", noMatch(in, what)
		}
		text := in.Remaining()[:n]
		return in.advance(n), text, nil
	}
}

// takeTill1 consumes one or more leading bytes until pred matches, failing
// if the very first byte already matches pred (or there is no input left).
func takeTill1(pred func(byte) bool, what string) func(Span) (Span, string, error) {
	return func(in Span) (Span, string, error) {
		n := 0
		for n < in.Len() && !pred(in.Remaining()[n]) {
			n++
		}
		if n == 0 {
			return in, "", noMatch(in, what)
		}
		text := in.Remaining()[:n]
		return in.advance(n), text, nil
	}
}

// multispace0 consumes zero or more ASCII whitespace bytes, reporting
// whether the consumed run contains a completely blank line. Counted the
// way str::lines() splits the run, the newline that ends the preceding
// line yields one "empty line" on its own, so a blank line shows up as a
// count of two or more; a run with zero or one empty line has none.
func multispace0(in Span) (out Span, consumed string, blankLine bool) {
	n := 0
	for n < in.Len() && isSpace(in.Remaining()[n]) {
		n++
	}
	consumed = in.Remaining()[:n]
	return in.advance(n), consumed, countEmptyLines(consumed) > 1
}

// multispace1 is like multispace0 but fails if no whitespace is consumed.
func multispace1(in Span) (Span, string, error) {
	out, consumed, _ := multispace0(in)
	if consumed == "" {
		return in, "", noMatch(in, "whitespace")
	}
	return out, consumed, nil
}

// countEmptyLines mimics Rust's str::lines() split-and-count-empties used by
// the original parser to decide comment attachment: split on '\n', trim a
// trailing '\r' from each piece, and (unlike a naive strings.Split) do not
// count a trailing empty piece caused by a final '\n'.
func countEmptyLines(s string) int {
	if s == "" {
		return 0
	}
	parts := strings.Split(s, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	count := 0
	for _, p := range parts {
		if strings.TrimSuffix(p, "\r") == "" {
			count++
		}
	}
	return count
}

// alt tries each parser in order, returning the first success. If all fail,
// it returns the error from the alternative that consumed no input (the
// furthest-reaching failure would be more informative, but the spec only
// requires the first failure to be reported, so the final alternative's
// error is surfaced).
func alt[T any](parsers ...func(Span) (Span, T, error)) func(Span) (Span, T, error) {
	return func(in Span) (Span, T, error) {
		var zero T
		var lastErr error
		for _, p := range parsers {
			out, v, err := p(in)
			if err == nil {
				return out, v, nil
			}
			lastErr = err
		}
		return in, zero, lastErr
	}
}

// many0 applies p repeatedly until it fails, collecting successes. It never
// fails itself.
func many0[T any](p func(Span) (Span, T, error)) func(Span) (Span, []T, error) {
	return func(in Span) (Span, []T, error) {
		var out []T
		cur := in
		for {
			next, v, err := p(cur)
			if err != nil {
				return cur, out, nil
			}
			out = append(out, v)
			cur = next
		}
	}
}

// many1 is like many0 but requires at least one match.
func many1[T any](p func(Span) (Span, T, error)) func(Span) (Span, []T, error) {
	return func(in Span) (Span, []T, error) {
		out, v, err := p(in)
		if err != nil {
			var zero []T
			return in, zero, err
		}
		rest, more, _ := many0(p)(out)
		return rest, append([]T{v}, more...), nil
	}
}
