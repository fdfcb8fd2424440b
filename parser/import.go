package parser

var dependencyTag = repeatedFileTag(tagFileImport)

// parseImport recognizes `import "<path>";`. Weak and public qualifiers are
// recognized syntactically (so `import weak "x.proto";` still parses) but
// not stored distinctly, per SPEC_FULL.md §4.4 and the Non-goals in §1.
func parseImport(in Span) (Span, string, error) {
	return locate(importBody, dependencyTag)(in)
}

func importBody(in Span) (Span, string, error) {
	cur, _, err := lit("import")(in)
	if err != nil {
		return in, "", err
	}
	cur, _, err = multispace1(cur)
	if err != nil {
		return in, "", err
	}

	if rest, _, werr := alt(lit("weak"), lit("public"))(cur); werr == nil {
		cur, _, err = multispace1(rest)
		if err != nil {
			return in, "", err
		}
	}

	cur, _, err = lit(`"`)(cur)
	if err != nil {
		return in, "", err
	}
	cur, path, err := takeTill1(func(b byte) bool {
		return b == '"' || isSpace(b)
	}, "import path")(cur)
	if err != nil {
		return in, "", err
	}
	cur, _, err = lit(`";`)(cur)
	if err != nil {
		return in, "", err
	}
	return cur, path, nil
}
