package parser

var syntaxTag = unaryFileTag(tagFileSyntax)

// parseSyntax recognizes the file's mandatory leading `syntax = "proto2";`
// or `syntax = "proto3";` statement, per SPEC_FULL.md §4.4. Any other
// leading content is reported as SyntaxMissing.
func parseSyntax(in Span) (Span, string, error) {
	return locate(syntaxBody, syntaxTag)(in)
}

func syntaxBody(in Span) (Span, string, error) {
	cur, _, err := lit("syntax")(in)
	if err != nil {
		return in, "", syntaxMissing(in, err)
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit("=")(cur)
	if err != nil {
		return in, "", syntaxMissing(in, err)
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit(`"`)(cur)
	if err != nil {
		return in, "", syntaxMissing(in, err)
	}

	value, syntax, err := alt(lit("proto2"), lit("proto3"))(cur)
	if err != nil {
		return in, "", syntaxMissing(in, err)
	}

	value, _, err = lit(`";`)(value)
	if err != nil {
		return in, "", syntaxMissing(in, err)
	}

	return value, syntax, nil
}

func syntaxMissing(at Span, cause error) error {
	return wrapError(SyntaxMissing, posOf(at), cause,
		`file must begin with a valid syntax statement, e.g. syntax = "proto3";`)
}
