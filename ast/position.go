// Package ast holds the small set of source-position types shared by the
// parser and reporter packages. It is named after (and scoped far more
// narrowly than) the teacher's own ast package: there is no token stream or
// syntax tree here, only the position type errors and locations are built
// from.
package ast

import "fmt"

// SourcePos identifies a single point in a parsed file. Line and Col are
// 1-based, matching how they are reported in compiler diagnostics; the
// descriptor locations the parser emits separately convert these to the
// zero-based form protobuf's source_code_info uses (see
// parser.LocationRecorder).
type SourcePos struct {
	Filename string
	Line     int
	Col      int
}

// String renders the position the way protoc-family tools do: "file:line:col".
func (p SourcePos) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// UnknownPos returns a position for a file when no specific line/column is
// available, e.g. for errors about the file as a whole.
func UnknownPos(filename string) SourcePos {
	return SourcePos{Filename: filename, Line: 1, Col: 1}
}
