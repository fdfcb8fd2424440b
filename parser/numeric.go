package parser

import "strconv"

// parseInt32 parses an optionally-signed decimal integer, used for both
// field numbers and enum values.
func parseInt32(in Span) (Span, int32, error) {
	cur := in
	sign := ""
	if rest, s, err := alt(lit("-"), lit("+"))(cur); err == nil {
		sign = s
		cur = rest
	}

	cur, digits, err := takeWhile1(isDigit, "digits")(cur)
	if err != nil {
		return in, 0, err
	}

	n, convErr := strconv.ParseInt(sign+digits, 10, 32)
	if convErr != nil {
		return in, 0, noMatch(in, "int32")
	}
	return cur, int32(n), nil
}
