package protoparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/descriptorpb"
)

// findMethod locates a single rpc method by file/service/method name,
// failing the test if any step of that path is missing.
func findMethod(t *testing.T, set *descriptorpb.FileDescriptorSet, fileName, serviceName, methodName string) *descriptorpb.MethodDescriptorProto {
	t.Helper()
	for _, file := range set.File {
		if file.GetName() != fileName {
			continue
		}
		for _, svc := range file.GetService() {
			if svc.GetName() != serviceName {
				continue
			}
			for _, method := range svc.GetMethod() {
				if method.GetName() == methodName {
					return method
				}
			}
		}
	}
	t.Fatalf("no method %s.%s/%s in set", fileName, serviceName, methodName)
	return nil
}

func TestResolveTypes_AbsoluteNameIsVerifiedNotRewritten(t *testing.T) {
	set := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{
				Name:    strPtr("a.proto"),
				Package: strPtr("p"),
				MessageType: []*descriptorpb.DescriptorProto{
					{Name: strPtr("Empty")},
				},
				Service: []*descriptorpb.ServiceDescriptorProto{
					{
						Name: strPtr("S"),
						Method: []*descriptorpb.MethodDescriptorProto{
							{Name: strPtr("F"), InputType: strPtr(".p.Empty"), OutputType: strPtr(".p.Empty")},
						},
					},
				},
			},
		},
	}

	require.NoError(t, resolveTypes(set))
	method := findMethod(t, set, "a.proto", "S", "F")
	if diff := cmp.Diff(".p.Empty", method.GetInputType()); diff != "" {
		t.Errorf("input_type mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveTypes_AbsoluteNameNotInIndexFails(t *testing.T) {
	set := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{
				Name: strPtr("a.proto"),
				Service: []*descriptorpb.ServiceDescriptorProto{
					{
						Name: strPtr("S"),
						Method: []*descriptorpb.MethodDescriptorProto{
							{Name: strPtr("F"), InputType: strPtr(".nope.Missing"), OutputType: strPtr(".nope.Missing")},
						},
					},
				},
			},
		},
	}

	err := resolveTypes(set)
	require.Error(t, err)
}

func TestImportClosure_TransitiveChain(t *testing.T) {
	set := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{Name: strPtr("a.proto")},
			{Name: strPtr("b.proto"), Dependency: []string{"a.proto"}},
			{Name: strPtr("c.proto"), Dependency: []string{"b.proto"}},
		},
	}

	closures := importClosure(set)
	require.ElementsMatch(t, []int{0}, closures[0])
	require.ElementsMatch(t, []int{0, 1}, closures[1])
	require.ElementsMatch(t, []int{0, 1, 2}, closures[2])
}

func strPtr(s string) *string { return &s }
