package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/types/descriptorpb"
)

func locAt(path ...int32) *descriptorpb.SourceCodeInfo_Location {
	return &descriptorpb.SourceCodeInfo_Location{Path: path}
}

func TestRepeatedFileTag_IndexesSiblingsInOrder(t *testing.T) {
	tag := repeatedFileTag(4)

	assert.Equal(t, []int32{4, 0}, tag.IntoPath(nil))
	assert.Equal(t, []int32{4, 1}, tag.IntoPath([]*descriptorpb.SourceCodeInfo_Location{locAt(4, 0)}))
	assert.Equal(t, []int32{4, 2}, tag.IntoPath([]*descriptorpb.SourceCodeInfo_Location{locAt(4, 0), locAt(4, 1)}))
}

func TestRepeatedFileTag_IgnoresOtherTagNumbers(t *testing.T) {
	tag := repeatedFileTag(6) // service, interleaved with messages (tag 4)
	locations := []*descriptorpb.SourceCodeInfo_Location{locAt(4, 0), locAt(6, 0), locAt(4, 1)}
	assert.Equal(t, []int32{6, 1}, tag.IntoPath(locations))
}

func TestAppendToParentTag_AttachesUnderMostRecentlyStarted(t *testing.T) {
	tag := appendToParentTag(1)
	locations := []*descriptorpb.SourceCodeInfo_Location{locAt(4, 0)}
	assert.Equal(t, []int32{4, 0, 1}, tag.IntoPath(locations))
}

func TestReplaceLastInParentTag_SwapsTrailingTag(t *testing.T) {
	tag := replaceLastInParentTag(3) // output_type, replacing input_type's 2
	locations := []*descriptorpb.SourceCodeInfo_Location{locAt(6, 0, 2)}
	assert.Equal(t, []int32{6, 0, 3}, tag.IntoPath(locations))
}

func TestNestedRepeatedTag_FirstChildFollowsParentName(t *testing.T) {
	tag := nestedRepeatedTag(2) // field, first one after the message's own name
	locations := []*descriptorpb.SourceCodeInfo_Location{locAt(4, 0, 1)}
	assert.Equal(t, []int32{4, 0, 2, 0}, tag.IntoPath(locations))
}

func TestNestedRepeatedTag_LaterChildFollowsSibling(t *testing.T) {
	tag := nestedRepeatedTag(2)
	locations := []*descriptorpb.SourceCodeInfo_Location{locAt(4, 0, 1), locAt(4, 0, 2, 0)}
	assert.Equal(t, []int32{4, 0, 2, 1}, tag.IntoPath(locations))
}

func TestUnaryFileTag_AlwaysReturnsSameSingletonPath(t *testing.T) {
	tag := unaryFileTag(12)
	assert.Equal(t, []int32{12}, tag.IntoPath(nil))
	assert.Equal(t, []int32{12}, tag.IntoPath([]*descriptorpb.SourceCodeInfo_Location{locAt(2)}))
}
