// Package reporter contains the error type used to report parse failures
// from the protoparse engine, in the spirit of the teacher's own
// reporter package, but scaled down to a single-error model: this engine
// reports the first failure and stops (see parser.Error's doc comment for
// why there is no multi-error Handler here).
package reporter

import (
	"fmt"

	"github.com/protocompile/protoparse/ast"
)

// ErrorWithPos is an error that knows where in the source it occurred. Code
// that wants structured access to the failing position (rather than just a
// formatted message) should use errors.As to recover one of these from a
// wrapped error chain.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error returns an ErrorWithPos that reports err at pos.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf is like Error but builds the underlying error with fmt.Errorf,
// so %w can be used to wrap a lower-level cause.
func Errorf(pos ast.SourcePos, format string, args ...interface{}) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
