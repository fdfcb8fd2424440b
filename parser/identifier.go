package parser

// nameTag is the Tag for a name/identifier attached directly under a
// just-started parent descriptor (field number 1 in any named descriptor).
var nameTag = appendToParentTag(tagName)

// isIdentByte matches the characters this grammar subset accepts inside a
// bare identifier: letters and dots, per SPEC_FULL.md §4.4. The underlying
// grammar doesn't yet support proper identifier rules (leading digits,
// underscores in qualified names); that is future work alongside the rest
// of the Non-goals in §1.
func isIdentByte(b byte) bool {
	return isAlpha(b) || b == '.'
}

// parseIdentifier takes one or more identifier bytes. It is unparameterized
// by a Tag; callers that need a located identifier use parseIdentifierAs.
func parseIdentifier(in Span) (Span, string, error) {
	return takeWhile1(isIdentByte, "identifier")(in)
}

// parseIdentifierAs locates an identifier under the given Tag, so it
// appears as its own entry in source_code_info (e.g. a message's name, or
// an rpc method's input/output type).
func parseIdentifierAs(tag Tag) func(Span) (Span, string, error) {
	return locate(parseIdentifier, tag)
}
