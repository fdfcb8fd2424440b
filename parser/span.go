package parser

// Span is a line/column-aware cursor over a file's source text. It never
// copies the underlying bytes; advancing a Span just narrows the slice and
// updates the 1-based line/column bookkeeping, the same way the teacher's
// own lexer tracks offsets into its FileInfo rather than re-slicing.
//
// Every Span produced while parsing a single file shares the same
// *LocationRecorder, so that sub-parsers can record locations without any
// of the plumbing needing to pass the recorder around explicitly.
type Span struct {
	src  string
	line int // 1-based
	col  int // 1-based
	rec  *LocationRecorder
}

// newSpan creates the initial Span for a file's source text.
func newSpan(src string, rec *LocationRecorder) Span {
	return Span{src: src, line: 1, col: 1, rec: rec}
}

// Len reports the number of remaining bytes.
func (s Span) Len() int { return len(s.src) }

// Empty reports whether the cursor has no remaining bytes.
func (s Span) Empty() bool { return len(s.src) == 0 }

// Remaining returns the unconsumed text. Used sparingly: the primitive
// combinators in primitive.go are the normal way to examine and consume it.
func (s Span) Remaining() string { return s.src }

// Pos returns the current 1-based source position, for attaching to errors.
func (s Span) Pos() (line, col int) { return s.line, s.col }

// advance consumes n bytes from the front of the span, updating line/col by
// scanning the consumed bytes for newlines. n must be <= len(s.src).
func (s Span) advance(n int) Span {
	consumed := s.src[:n]
	line, col := s.line, s.col
	for i := 0; i < len(consumed); i++ {
		if consumed[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Span{src: s.src[n:], line: line, col: col, rec: s.rec}
}
