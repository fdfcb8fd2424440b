package protoparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiler_CrossFileResolution(t *testing.T) {
	t.Parallel()
	c := Compiler{
		Files: Files{
			"a.proto": {Name: "a.proto", Text: `syntax = "proto3"; package p; message Empty {}`},
			"b.proto": {Name: "b.proto", Text: `syntax = "proto3"; package p; import "a.proto"; service S { rpc F(Empty) returns (Empty); }`},
		},
	}

	set, err := c.Compile(context.Background())
	require.NoError(t, err)
	require.Len(t, set.File, 2)

	method := findMethod(t, set, "b.proto", "S", "F")
	assert.Equal(t, ".p.Empty", method.GetInputType())
	assert.Equal(t, ".p.Empty", method.GetOutputType())
}

func TestCompiler_ResolverIdempotence(t *testing.T) {
	t.Parallel()
	c := Compiler{
		Files: Files{
			"a.proto": {Name: "a.proto", Text: `syntax = "proto3"; package p; message Empty {}`},
			"b.proto": {Name: "b.proto", Text: `syntax = "proto3"; package p; import "a.proto"; service S { rpc F(Empty) returns (Empty); }`},
		},
	}

	set, err := c.Compile(context.Background())
	require.NoError(t, err)

	before := findMethod(t, set, "b.proto", "S", "F")
	require.NoError(t, resolveTypes(set))
	after := findMethod(t, set, "b.proto", "S", "F")

	assert.Equal(t, before.GetInputType(), after.GetInputType())
	assert.Equal(t, before.GetOutputType(), after.GetOutputType())
}

func TestCompiler_UnresolvableTypeFails(t *testing.T) {
	t.Parallel()
	c := Compiler{
		Files: Files{
			"b.proto": {Name: "b.proto", Text: `syntax = "proto3"; service S { rpc F(Missing) returns (Missing); }`},
		},
	}

	_, err := c.Compile(context.Background())
	require.Error(t, err)
}

func TestCompiler_RelativeResolutionIsScopedToImportClosure(t *testing.T) {
	t.Parallel()
	// "Other" declares an unrelated message with the same bare name as the
	// one b.proto actually wants; since b.proto does not import other.proto,
	// the resolver must not pick it up, and must instead find the one in
	// a.proto, which b.proto does import.
	c := Compiler{
		Files: Files{
			"a.proto":     {Name: "a.proto", Text: `syntax = "proto3"; package p; message Empty {}`},
			"other.proto": {Name: "other.proto", Text: `syntax = "proto3"; package other; message Empty {}`},
			"b.proto":     {Name: "b.proto", Text: `syntax = "proto3"; package p; import "a.proto"; service S { rpc F(Empty) returns (Empty); }`},
		},
	}

	set, err := c.Compile(context.Background())
	require.NoError(t, err)

	method := findMethod(t, set, "b.proto", "S", "F")
	assert.Equal(t, ".p.Empty", method.GetInputType())
}

func TestCompiler_EmptyFilesReturnsEmptySet(t *testing.T) {
	t.Parallel()
	c := Compiler{}
	set, err := c.Compile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, set.File)
}
