package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/protocompile/protoparse/ast"
)

func TestError_FormatsPositionAndMessage(t *testing.T) {
	pos := ast.SourcePos{Filename: "a.proto", Line: 3, Col: 5}
	err := Error(pos, errors.New("boom"))
	assert.Equal(t, "a.proto:3:5: boom", err.Error())
	assert.Equal(t, pos, err.GetPosition())
}

func TestErrorf_WrapsUnderlyingForErrorsIs(t *testing.T) {
	sentinel := errors.New("sentinel")
	pos := ast.SourcePos{Line: 1, Col: 1}
	err := Errorf(pos, "wrapped: %w", sentinel)

	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, sentinel, errors.Unwrap(err.Unwrap()))
}
