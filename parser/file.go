package parser

import "google.golang.org/protobuf/types/descriptorpb"

// fileBody implements the statement loop described in SPEC_FULL.md §4.8: a
// mandatory leading syntax statement, followed by zero or more of
// {import, package, message, service, enum} in any order, until no
// alternative matches and the remaining input is asserted to be empty
// (modulo trailing comments/whitespace).
func fileBody(in Span) (Span, *descriptorpb.FileDescriptorProto, error) {
	cur, syntax, err := parseSyntax(in)
	if err != nil {
		return in, nil, err
	}

	file := &descriptorpb.FileDescriptorProto{Syntax: &syntax}

	var lastStmtErr error
	for {
		rest, path, ierr := parseImport(cur)
		if ierr == nil {
			file.Dependency = append(file.Dependency, path)
			cur = rest
			continue
		}
		rest, pkg, perr := parsePackage(cur)
		if perr == nil {
			if file.Package != nil {
				return in, nil, newError(DuplicatePackage, posOf(cur),
					"multiple package statements in a single file")
			}
			file.Package = &pkg
			cur = rest
			continue
		}
		rest, msg, merr := parseMessage(cur)
		if merr == nil {
			file.MessageType = append(file.MessageType, msg)
			cur = rest
			continue
		}
		// A typed *Error means a message statement was recognized and failed
		// inside its body (e.g. UnknownType); report that failure instead of
		// the UnconsumedInput this loop would otherwise end in.
		if typed, ok := merr.(*Error); ok {
			return in, nil, typed
		}
		rest, svc, serr := parseService(cur)
		if serr == nil {
			file.Service = append(file.Service, svc)
			cur = rest
			continue
		}
		rest, enm, eerr := parseEnum(cur)
		if eerr == nil {
			file.EnumType = append(file.EnumType, enm)
			cur = rest
			continue
		}
		lastStmtErr = eerr
		break
	}

	cur, _, _ = many0(parseComment)(cur)
	cur, _, _ = multispace0(cur)
	if !cur.Empty() {
		remaining := cur.Remaining()
		if len(remaining) > 20 {
			remaining = remaining[:20]
		}
		return in, nil, wrapError(UnconsumedInput, posOf(cur), lastStmtErr, "unexpected input: %q", remaining)
	}

	return cur, file, nil
}

// ParseFile parses a single .proto file's source text into a
// FileDescriptorProto with source_code_info populated, per
// SPEC_FULL.md §4.8. name becomes the descriptor's Name field (the caller
// supplies it; this package never touches the filesystem).
func ParseFile(name, text string) (*descriptorpb.FileDescriptorProto, error) {
	rec := NewLocationRecorder(name)
	span := newSpan(text, rec)

	_, file, err := locate(fileBody, rootTag)(span)
	if err != nil {
		return nil, err
	}

	file.Name = &name
	file.SourceCodeInfo = &descriptorpb.SourceCodeInfo{Location: rec.Finish()}
	return file, nil
}
