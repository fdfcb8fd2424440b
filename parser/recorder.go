package parser

import (
	"sync"

	"google.golang.org/protobuf/types/descriptorpb"
)

// Tag computes the descriptor path for one node kind, given the locations
// recorded so far. Tags carry no state of their own; they are pure
// strategies keyed off the shape of the ledger at the moment a node starts,
// exactly as described in SPEC_FULL.md §4.2.
type Tag interface {
	IntoPath(locations []*descriptorpb.SourceCodeInfo_Location) []int32
}

// TagFunc adapts a plain function to the Tag interface.
type TagFunc func(locations []*descriptorpb.SourceCodeInfo_Location) []int32

// IntoPath implements Tag.
func (f TagFunc) IntoPath(locations []*descriptorpb.SourceCodeInfo_Location) []int32 {
	return f(locations)
}

// rootTag is the Tag for the file itself: its path is always empty.
var rootTag Tag = TagFunc(func([]*descriptorpb.SourceCodeInfo_Location) []int32 {
	return nil
})

// Handle is returned by LocationRecorder.Start and threaded through a parse
// until it either completes (End) or is abandoned (Discard).
type Handle struct {
	index            int
	leadingDetached  []string
	leadingComments  *string
	trailingComments *string
}

// LocationRecorder is the shared, order-preserving ledger of locations
// accumulated while parsing a single file. It is written to only through
// Start/End/Discard; Finish consumes it.
//
// A single file's parse is always single-threaded (SPEC_FULL.md §5), and a
// *LocationRecorder is never shared across the parallel fan-out in
// Compiler.Compile — each file gets its own. The mutex below is therefore
// defensive rather than load-bearing: it costs nothing observable today and
// guards against a future refactor accidentally sharing one across
// goroutines.
type LocationRecorder struct {
	// Filename is the logical file name attached to positions derived from
	// Spans built on top of this recorder; it has no bearing on recording
	// itself, but every *Error raised while parsing needs it.
	Filename string

	mu        sync.Mutex
	locations []*descriptorpb.SourceCodeInfo_Location
}

// NewLocationRecorder creates a new, empty LocationRecorder for the named
// file.
func NewLocationRecorder(filename string) *LocationRecorder {
	return &LocationRecorder{Filename: filename}
}

// Start begins recording a location at the given cursor position, computing
// its path via tag.IntoPath against the locations completed (or in
// progress) so far. It returns a Handle for later completion or discard.
func (r *LocationRecorder) Start(at Span, tag Tag) Handle {
	line, col := at.Pos()
	startLine := int32(line - 1)
	startCol := int32(col - 1)

	r.mu.Lock()
	path := tag.IntoPath(r.locations)
	loc := &descriptorpb.SourceCodeInfo_Location{
		Path: path,
		Span: []int32{startLine, startCol},
	}
	r.locations = append(r.locations, loc)
	index := len(r.locations) - 1
	r.mu.Unlock()

	return Handle{index: index}
}

// End completes the location started at handle, stamping its end position
// and any comments accumulated on the handle. If handle.index no longer
// refers to a live placeholder (e.g. a sibling's Discard removed it), End
// silently does nothing, matching SPEC_FULL.md §4.1's tolerance of stale
// handles.
func (r *LocationRecorder) End(handle Handle, at Span) {
	line, col := at.Pos()
	endLine := int32(line - 1)
	endCol := int32(col - 1)

	r.mu.Lock()
	defer r.mu.Unlock()

	if handle.index < 0 || handle.index >= len(r.locations) {
		return
	}
	loc := r.locations[handle.index]

	loc.LeadingDetachedComments = handle.leadingDetached
	loc.LeadingComments = handle.leadingComments
	loc.TrailingComments = handle.trailingComments

	if loc.Span[0] != endLine {
		loc.Span = append(loc.Span, endLine)
	}
	loc.Span = append(loc.Span, endCol)
}

// Discard drops handle's placeholder and anything recorded after it,
// unwinding the ledger after a speculative parse failed.
func (r *LocationRecorder) Discard(handle Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if handle.index < 0 || handle.index >= len(r.locations) {
		return
	}
	r.locations = r.locations[:handle.index]
}

// Finish consumes the recorder, returning only completed locations (span
// length > 2); any leftover two-entry placeholders are never-completed
// remnants of a failed alt-branch that did not call Discard.
func (r *LocationRecorder) Finish() []*descriptorpb.SourceCodeInfo_Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*descriptorpb.SourceCodeInfo_Location, 0, len(r.locations))
	for _, loc := range r.locations {
		if len(loc.Span) > 2 {
			out = append(out, loc)
		}
	}
	return out
}
