package parser

import "google.golang.org/protobuf/types/descriptorpb"

var serviceTag = repeatedFileTag(tagFileService)

// parseService recognizes `service <Ident> { <method>* }`, per
// SPEC_FULL.md §4.7. A service allows zero methods.
func parseService(in Span) (Span, *descriptorpb.ServiceDescriptorProto, error) {
	return locate(serviceBody, serviceTag)(in)
}

func serviceBody(in Span) (Span, *descriptorpb.ServiceDescriptorProto, error) {
	cur, _, err := lit("service")(in)
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

	cur, methods, _ := many0(parseMethod)(cur)

	cur, _, _ = many0(parseComment)(cur)
	cur, _, _ = multispace0(cur)
	cur, _, err = lit("}")(cur)
	if err != nil {
		return in, nil, err
	}

	return cur, &descriptorpb.ServiceDescriptorProto{Name: &name, Method: methods}, nil
}
