package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocationRecorder_RootPath mirrors the original parser's own
// handles_root_path test: starting a location with rootTag always yields an
// empty path, regardless of what else has been recorded.
func TestLocationRecorder_RootPath(t *testing.T) {
	rec := NewLocationRecorder("a.proto")
	span := newSpan("", rec)
	handle := rec.Start(span, rootTag)
	rec.End(handle, span)

	locs := rec.Finish()
	require.Len(t, locs, 1)
	assert.Empty(t, locs[0].GetPath())
}

func TestLocationRecorder_DiscardRemovesPlaceholderAndLaterSiblings(t *testing.T) {
	rec := NewLocationRecorder("a.proto")
	span := newSpan("abc", rec)

	kept := rec.Start(span, unaryFileTag(12))
	rec.End(kept, span)

	speculative := rec.Start(span, unaryFileTag(2))
	rec.Discard(speculative)

	locs := rec.Finish()
	require.Len(t, locs, 1)
	assert.Equal(t, []int32{12}, locs[0].GetPath())
}

func TestLocationRecorder_FinishFiltersUnfinishedPlaceholders(t *testing.T) {
	rec := NewLocationRecorder("a.proto")
	span := newSpan("abc", rec)

	rec.Start(span, unaryFileTag(2)) // never End'd or Discard'd

	locs := rec.Finish()
	assert.Empty(t, locs, "a placeholder with span length 2 must never reach Finish's output")
}

func TestLocationRecorder_EndIsNoOpForStaleHandle(t *testing.T) {
	rec := NewLocationRecorder("a.proto")
	span := newSpan("abc", rec)

	stale := rec.Start(span, unaryFileTag(12))
	rec.Discard(stale)

	assert.NotPanics(t, func() {
		rec.End(stale, span)
	})
	assert.Empty(t, rec.Finish())
}

func TestLocationRecorder_EndSameLineSpanHasThreeElements(t *testing.T) {
	rec := NewLocationRecorder("a.proto")
	span := newSpan("abcdef", rec)
	handle := rec.Start(span, unaryFileTag(12))
	rec.End(handle, span.advance(3))

	locs := rec.Finish()
	require.Len(t, locs, 1)
	assert.Len(t, locs[0].GetSpan(), 3)
}

func TestLocationRecorder_EndMultiLineSpanHasFourElements(t *testing.T) {
	rec := NewLocationRecorder("a.proto")
	span := newSpan("ab\ncd", rec)
	handle := rec.Start(span, unaryFileTag(12))
	rec.End(handle, span.advance(4))

	locs := rec.Finish()
	require.Len(t, locs, 1)
	assert.Len(t, locs[0].GetSpan(), 4)
}
