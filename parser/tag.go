package parser

import "google.golang.org/protobuf/types/descriptorpb"

// Canonical field numbers used when building descriptor paths. These mirror
// the field tags in descriptor.proto for the subset of FileDescriptorProto,
// DescriptorProto, and ServiceDescriptorProto this parser populates.
const (
	tagFilePackage = 2
	tagFileImport  = 3
	tagFileMessage = 4
	tagFileEnum    = 5
	tagFileService = 6
	tagFileSyntax  = 12

	tagName = 1 // identifier field, attached to any named descriptor

	tagMessageField  = 2 // DescriptorProto.field
	tagServiceMethod = 2 // ServiceDescriptorProto.method

	tagMethodInputType  = 2
	tagMethodOutputType = 3
)

// unaryFileTag builds a Tag for a file-level statement that can occur at
// most once (syntax, package): its path is always just [tagNum].
func unaryFileTag(tagNum int32) Tag {
	return TagFunc(func([]*descriptorpb.SourceCodeInfo_Location) []int32 {
		return []int32{tagNum}
	})
}

// repeatedFileTag builds a Tag for a repeated file-level statement (message,
// service, enum, import): scans backward for the most recent location
// beginning with the same tag and increments its sibling index, or starts at
// 0 if none is found yet.
func repeatedFileTag(tagNum int32) Tag {
	return TagFunc(func(locations []*descriptorpb.SourceCodeInfo_Location) []int32 {
		for i := len(locations) - 1; i >= 0; i-- {
			path := locations[i].GetPath()
			if len(path) > 0 && path[0] == tagNum {
				return []int32{tagNum, path[1] + 1}
			}
		}
		return []int32{tagNum, 0}
	})
}

// appendToParentTag builds a Tag for a node that is attached directly under
// the most recently started node (its parent), such as an identifier inside
// a message/enum/service/method: the path is the parent's path with tagNum
// appended.
func appendToParentTag(tagNum int32) Tag {
	return TagFunc(func(locations []*descriptorpb.SourceCodeInfo_Location) []int32 {
		parent := lastLocation(locations)
		path := append(append([]int32(nil), parent.GetPath()...), tagNum)
		return path
	})
}

// replaceLastInParentTag builds a Tag for a node that follows a sibling
// under the same parent slot, replacing the sibling's own trailing tag with
// tagNum: used for a method's output_type, which follows its input_type
// (and the input_type, which follows the method's own name).
func replaceLastInParentTag(tagNum int32) Tag {
	return TagFunc(func(locations []*descriptorpb.SourceCodeInfo_Location) []int32 {
		parent := lastLocation(locations)
		parentPath := parent.GetPath()
		base := parentPath
		if len(base) > 0 {
			base = base[:len(base)-1]
		}
		path := append(append([]int32(nil), base...), tagNum)
		return path
	})
}

// nestedRepeatedTag builds a Tag for a repeated field nested one level below
// a file-level message/enum/service, such as DescriptorProto.field or
// ServiceDescriptorProto.method. The most recently recorded location is
// either the parent's own name marker ([outer, index, 1], meaning no
// sibling has been recorded yet) or belongs to a previous sibling of this
// same childTag: the sibling itself ([outer, index, childTag, k]) or one of
// its own sub-locations, such as a method's output type.
func nestedRepeatedTag(childTag int32) Tag {
	return TagFunc(func(locations []*descriptorpb.SourceCodeInfo_Location) []int32 {
		parent := lastLocation(locations)
		path := parent.GetPath()

		switch {
		case len(path) >= 4 && path[2] == childTag:
			return []int32{path[0], path[1], childTag, path[3] + 1}
		case len(path) == 3 && path[2] == tagName:
			return []int32{path[0], path[1], childTag, 0}
		default:
			// Not produced by this grammar: every message/enum/service body
			// statement follows either the enclosing descriptor's name or
			// an earlier sibling (or one of that sibling's sub-locations).
			return append(append([]int32(nil), path...), childTag, 0)
		}
	})
}

func lastLocation(locations []*descriptorpb.SourceCodeInfo_Location) *descriptorpb.SourceCodeInfo_Location {
	if len(locations) == 0 {
		return &descriptorpb.SourceCodeInfo_Location{}
	}
	return locations[len(locations)-1]
}
