package parser

import "google.golang.org/protobuf/types/descriptorpb"

var fieldTag = nestedRepeatedTag(tagMessageField)

// scalarTypes maps the fifteen accepted type keywords to their canonical
// descriptor type, per SPEC_FULL.md §6. Keyword match is exact: no aliases,
// and the reserved/unsupported group(10), message(11), and enum(14) tags
// are deliberately absent (see SPEC_FULL.md §9, Open Questions).
var scalarTypes = map[string]descriptorpb.FieldDescriptorProto_Type{
	"double":   descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
	"float":    descriptorpb.FieldDescriptorProto_TYPE_FLOAT,
	"int64":    descriptorpb.FieldDescriptorProto_TYPE_INT64,
	"uint64":   descriptorpb.FieldDescriptorProto_TYPE_UINT64,
	"int32":    descriptorpb.FieldDescriptorProto_TYPE_INT32,
	"fixed64":  descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
	"fixed32":  descriptorpb.FieldDescriptorProto_TYPE_FIXED32,
	"bool":     descriptorpb.FieldDescriptorProto_TYPE_BOOL,
	"string":   descriptorpb.FieldDescriptorProto_TYPE_STRING,
	"bytes":    descriptorpb.FieldDescriptorProto_TYPE_BYTES,
	"uint32":   descriptorpb.FieldDescriptorProto_TYPE_UINT32,
	"sfixed32": descriptorpb.FieldDescriptorProto_TYPE_SFIXED32,
	"sfixed64": descriptorpb.FieldDescriptorProto_TYPE_SFIXED64,
	"sint32":   descriptorpb.FieldDescriptorProto_TYPE_SINT32,
	"sint64":   descriptorpb.FieldDescriptorProto_TYPE_SINT64,
}

// parseField recognizes `<type> <name> = <number>;`, per SPEC_FULL.md §4.5.
// Label keywords (optional/repeated/required) are not accepted: fieldBody
// returns an untyped failure for them, so the enclosing message reports the
// statement as MalformedStatement. Any other unrecognized type keyword is
// reported as UnknownType.
func parseField(in Span) (Span, *descriptorpb.FieldDescriptorProto, error) {
	return locate(fieldBody, fieldTag)(in)
}

func fieldBody(in Span) (Span, *descriptorpb.FieldDescriptorProto, error) {
	cur, typeName, err := takeWhile1(isAlphaNumeric, "field type")(in)
	if err != nil {
		return in, nil, err
	}
	fieldType, ok := scalarTypes[typeName]
	if !ok {
		if typeName == "oneof" {
			// Not a field at all: let the caller's oneof branch take it,
			// same as any other keyword this parser doesn't recognize as
			// a statement of its own kind.
			return in, nil, noMatch(in, "field type")
		}
		if typeName == "optional" || typeName == "repeated" || typeName == "required" {
			return in, nil, noMatch(in, "field type")
		}
		return in, nil, wrapError(UnknownType, posOf(in), noMatch(in, "scalar type"), "unknown field type %q", typeName)
	}

	cur, _, err = multispace1(cur)
	if err != nil {
		return in, nil, err
	}

	cur, name, err := takeTill1(isSpace, "field name")(cur)
	if err != nil {
		return in, nil, err
	}

	cur, _, _ = multispace0(cur)
	cur, _, err = lit("=")(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)

	cur, number, err := parseInt32(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit(";")(cur)
	if err != nil {
		return in, nil, err
	}

	return cur, &descriptorpb.FieldDescriptorProto{
		Name:   &name,
		Number: &number,
		Type:   fieldType.Enum(),
	}, nil
}
