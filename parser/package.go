package parser

var packageTag = unaryFileTag(tagFilePackage)

// parsePackage recognizes `package <dotted.ident>;`. Whether a second
// package statement is a duplicate is a file-driver concern (fileBody),
// since this parser has no notion of "the rest of the file".
func parsePackage(in Span) (Span, string, error) {
	return locate(packageBody, packageTag)(in)
}

func packageBody(in Span) (Span, string, error) {
	cur, _, err := lit("package")(in)
	if err != nil {
		return in, "", err
	}
	cur, _, err = multispace1(cur)
	if err != nil {
		return in, "", err
	}
	cur, name, err := takeTill1(func(b byte) bool {
		return b == ';' || isSpace(b)
	}, "package name")(cur)
	if err != nil {
		return in, "", err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit(";")(cur)
	if err != nil {
		return in, "", err
	}
	return cur, name, nil
}
