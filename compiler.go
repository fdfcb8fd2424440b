// Package protoparse parses Protocol Buffers schema files into canonical
// FileDescriptorProto/FileDescriptorSet trees, with source_code_info
// populated to the same precision protoc itself records, and resolves RPC
// method input/output types across the files in a single Compile call.
package protoparse

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/semaphore"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protocompile/protoparse/parser"
)

// FileSource is the text of a single .proto file, named the way it should
// appear in the resulting FileDescriptorProto's Name field.
type FileSource struct {
	Name string
	Text string
}

// Files maps an arbitrary caller-chosen key (typically the same as the
// FileSource's Name) to its source. The key only drives Compile's Files
// iteration; the descriptor's file name always comes from FileSource.Name.
type Files map[string]FileSource

// Compiler parses and resolves a fixed set of files. A zero-value Compiler
// with Files populated is ready to use; MaxParallelism defaults to
// runtime.GOMAXPROCS(0) when left at zero.
type Compiler struct {
	Files          Files
	MaxParallelism int
}

// fileResult carries one file's outcome back to Compile, the same shape the
// teacher's own executor uses (a result struct with a ready channel) instead
// of a WaitGroup, so a caller waiting on results can also observe ctx
// cancellation while doing so.
type fileResult struct {
	index int
	fd    *descriptorpb.FileDescriptorProto
	err   error
}

// Compile parses every file in c.Files independently, bounded by
// MaxParallelism in-flight parses at a time via a semaphore.Weighted — the
// same mechanism the teacher's own Compiler uses to bound its parallelism
// (SPEC_FULL.md §4.10, §5) — and then runs the cross-file type resolver over
// the resulting set (§4.9). It returns the first error encountered, from
// either phase.
func (c Compiler) Compile(ctx context.Context) (*descriptorpb.FileDescriptorSet, error) {
	if len(c.Files) == 0 {
		return &descriptorpb.FileDescriptorSet{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	parallelism := c.MaxParallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(parallelism))

	// Files is a map, so its iteration order is random; sort the keys first
	// so the resulting FileDescriptorSet.File order is deterministic across
	// runs regardless of which worker finishes first.
	keys := make([]string, 0, len(c.Files))
	for k := range c.Files {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ready := make(chan fileResult, len(keys))
	for i, k := range keys {
		i, src := i, c.Files[k]
		go func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				ready <- fileResult{index: i, err: err}
				return
			}
			defer sem.Release(1)

			fd, err := parser.ParseFile(src.Name, src.Text)
			ready <- fileResult{index: i, fd: fd, err: err}
		}()
	}

	results := make([]*descriptorpb.FileDescriptorProto, len(keys))
	var firstErr error
	for range keys {
		select {
		case r := <-ready:
			if r.err != nil {
				if firstErr == nil {
					firstErr = r.err
					cancel() // stop any not-yet-started parse from acquiring the semaphore
				}
				continue
			}
			results[r.index] = r.fd
		case <-ctx.Done():
			if firstErr == nil {
				firstErr = ctx.Err()
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	set := &descriptorpb.FileDescriptorSet{File: results}
	if err := resolveTypes(set); err != nil {
		return nil, err
	}
	return set, nil
}
