package parser

import "google.golang.org/protobuf/types/descriptorpb"

var messageTag = repeatedFileTag(tagFileMessage)

// parseMessage recognizes `message <Ident> { ... }`, per SPEC_FULL.md §4.5.
// Between the braces it accepts zero or more field or oneof statements;
// nested messages, enums, extensions, reserved ranges, and options are
// future work (§1 Non-goals).
func parseMessage(in Span) (Span, *descriptorpb.DescriptorProto, error) {
	return locate(messageBody, messageTag)(in)
}

func messageBody(in Span) (Span, *descriptorpb.DescriptorProto, error) {
	cur, _, err := lit("message")(in)
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

	descriptor := &descriptorpb.DescriptorProto{Name: &name}

	for {
		cur, _, _ = many0(parseComment)(cur)
		cur, _, _ = multispace0(cur)
		if rest, _, err := lit("}")(cur); err == nil {
			cur = rest
			break
		}

		rest, field, ferr := parseField(cur)
		if ferr == nil {
			descriptor.Field = append(descriptor.Field, field)
			cur = rest
			continue
		}
		// A typed *Error means parseField recognized a field statement and
		// failed partway through it (e.g. UnknownType); that is the real
		// failure and must propagate rather than be papered over by trying
		// oneof next, which cannot succeed on the same input either.
		if typed, ok := ferr.(*Error); ok {
			return in, nil, typed
		}

		rest, oneof, oerr := parseOneof(cur)
		if oerr != nil {
			return in, nil, wrapError(MalformedStatement, posOf(cur), oerr,
				"expected a field or oneof declaration inside message %q", name)
		}

		oneofIndex := int32(len(descriptor.OneofDecl))
		descriptor.OneofDecl = append(descriptor.OneofDecl, oneof.decl)
		for _, field := range oneof.fields {
			index := oneofIndex
			field.OneofIndex = &index
			descriptor.Field = append(descriptor.Field, field)
		}
		cur = rest
	}

	return cur, descriptor, nil
}
