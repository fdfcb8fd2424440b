package parser

import "google.golang.org/protobuf/types/descriptorpb"

var (
	methodTag     = nestedRepeatedTag(tagServiceMethod)
	inputTypeTag  = replaceLastInParentTag(tagMethodInputType)
	outputTypeTag = replaceLastInParentTag(tagMethodOutputType)
)

// parseMethod recognizes `rpc <Ident>(<Ident>) returns (<Ident>);`, per
// SPEC_FULL.md §4.7. Streaming keywords on either side are future work.
func parseMethod(in Span) (Span, *descriptorpb.MethodDescriptorProto, error) {
	return locate(methodBody, methodTag)(in)
}

func methodBody(in Span) (Span, *descriptorpb.MethodDescriptorProto, error) {
	cur, _, err := lit("rpc")(in)
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

	cur, _, err = lit("(")(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, inputType, err := parseIdentifierAs(inputTypeTag)(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit(")")(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)

	cur, _, err = lit("returns")(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)

	cur, _, err = lit("(")(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, outputType, err := parseIdentifierAs(outputTypeTag)(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit(")")(cur)
	if err != nil {
		return in, nil, err
	}
	cur, _, _ = multispace0(cur)
	cur, _, err = lit(";")(cur)
	if err != nil {
		return in, nil, err
	}

	return cur, &descriptorpb.MethodDescriptorProto{
		Name:       &name,
		InputType:  &inputType,
		OutputType: &outputType,
	}, nil
}
