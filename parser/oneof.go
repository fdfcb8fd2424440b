package parser

import "google.golang.org/protobuf/types/descriptorpb"

// oneofResult bundles a parsed oneof's own descriptor with the field
// descriptors declared inside it; the caller (parseMessage) is responsible
// for stamping OneofIndex and appending both into the enclosing message,
// per SPEC_FULL.md §4.5.
type oneofResult struct {
	decl   *descriptorpb.OneofDescriptorProto
	fields []*descriptorpb.FieldDescriptorProto
}

// parseOneof recognizes `oneof <name> { <field>* }`. Unlike message and
// field, the oneof declaration itself is not stamped with its own location
// entry: the original grammar this is distilled from never assigns it a
// Tag, so only its member fields appear in source_code_info (as ordinary
// siblings of any other field in the enclosing message).
func parseOneof(in Span) (Span, oneofResult, error) {
	skipped, _, _ := many0(parseComment)(in)
	skipped, _, _ = multispace0(skipped)

	cur, _, err := lit("oneof")(skipped)
	if err != nil {
		return in, oneofResult{}, err
	}
	cur, _, err = multispace1(cur)
	if err != nil {
		return in, oneofResult{}, err
	}
	cur, name, err := takeTill1(isSpace, "oneof name")(cur)
	if err != nil {
		return in, oneofResult{}, err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit("{")(cur)
	if err != nil {
		return in, oneofResult{}, err
	}
	cur, _, _ = multispace0(cur)

	cur, fields, _ := many0(parseField)(cur)

	cur, _, _ = multispace0(cur)
	cur, _, err = lit("}")(cur)
	if err != nil {
		return in, oneofResult{}, err
	}

	return cur, oneofResult{
		decl:   &descriptorpb.OneofDescriptorProto{Name: &name},
		fields: fields,
	}, nil
}
