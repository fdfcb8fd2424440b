package parser

import "strings"

// parseComment recognizes a single "// ..." line comment or "/* ... */"
// block comment and returns its text (the content after "//", or between
// the "/*" and "*/" delimiters). Leading whitespace is consumed as part of
// matching; whitespace after the comment (including the newline ending a
// line comment) is left for the caller, so locate can see whether a blank
// line separates the last comment from the node it precedes.
func parseComment(in Span) (Span, string, error) {
	cur, _, _ := multispace0(in)

	if rest, ok := stripPrefix(cur, "//"); ok {
		rest, _, _ = multispace0(rest)
		text, end := takeLineComment(rest)
		return end, text, nil
	}

	if rest, ok := stripPrefix(cur, "/*"); ok {
		rest, _, _ = multispace0(rest)
		idx := strings.Index(rest.Remaining(), "*/")
		if idx < 0 {
			return in, "", noMatch(cur, "closing */")
		}
		text := rest.Remaining()[:idx]
		end := rest.advance(idx).advance(len("*/"))
		return end, text, nil
	}

	return in, "", noMatch(in, "comment")
}

func stripPrefix(in Span, prefix string) (Span, bool) {
	if len(in.Remaining()) < len(prefix) || in.Remaining()[:len(prefix)] != prefix {
		return in, false
	}
	return in.advance(len(prefix)), true
}

// takeLineComment returns the text up to (not including) the next newline,
// or the remainder of the input if there is none.
func takeLineComment(in Span) (string, Span) {
	rest := in.Remaining()
	idx := strings.IndexByte(rest, '\n')
	if idx < 0 {
		return rest, in.advance(len(rest))
	}
	return rest[:idx], in.advance(idx)
}
