package parser

import "google.golang.org/protobuf/types/descriptorpb"

var enumTag = repeatedFileTag(tagFileEnum)

// parseEnum recognizes `enum <Ident> { ( <Ident> = <int32> ; )+ }`, per
// SPEC_FULL.md §4.6. At least one value is required; enum-value options are
// future work.
func parseEnum(in Span) (Span, *descriptorpb.EnumDescriptorProto, error) {
	return locate(enumBody, enumTag)(in)
}

func enumBody(in Span) (Span, *descriptorpb.EnumDescriptorProto, error) {
	cur, _, err := lit("enum")(in)
	if err != nil {
		return in, nil, err
	}
	cur, _, err = multispace1(cur)
	if err != nil {
		return in, nil, err
	}
	cur, name, err := parseIdentifierAs(nameTag)(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit("{")(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)

	cur, values, err := many1(parseEnumValue)(cur)
	if err != nil {
		return in, nil, wrapError(MalformedStatement, posOf(cur), err,
			"enum %q must declare at least one value", name)
	}

	cur, _, _ = multispace0(cur)
	cur, _, err = lit("}")(cur)
	if err != nil {
		return in, nil, err
	}

	return cur, &descriptorpb.EnumDescriptorProto{Name: &name, Value: values}, nil
}

var enumValueTag = nestedRepeatedTag(2) // EnumDescriptorProto.value is field 2

// parseEnumValue recognizes `<Ident> = <int32> ;` and records its own
// location among the enum's sibling values, the same as parseField does for
// message fields.
func parseEnumValue(in Span) (Span, *descriptorpb.EnumValueDescriptorProto, error) {
	return locate(enumValueBody, enumValueTag)(in)
}

func enumValueBody(in Span) (Span, *descriptorpb.EnumValueDescriptorProto, error) {
	cur, name, err := takeWhile1(isWordByte, "enum value name")(in)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit("=")(cur)
	if err != nil {
		return in, nil, wrapError(MalformedStatement, posOf(cur), err, "expected '=' after enum value name %q", name)
	}
	cur, _, _ = multispace0(cur)
	cur, number, err := parseInt32(cur)
	if err != nil {
		return in, nil, wrapError(MalformedStatement, posOf(cur), err, "expected an integer value for enum value %q", name)
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit(";")(cur)
	if err != nil {
		return in, nil, wrapError(MalformedStatement, posOf(cur), err, "expected ';' after enum value %q", name)
	}

	return cur, &descriptorpb.EnumValueDescriptorProto{Name: &name, Number: &number}, nil
}
