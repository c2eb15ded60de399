package sauce

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/sauce/internal/codec"
	"github.com/simonhull/sauce/internal/types"
)

// File represents an opened file together with its parsed SAUCE metadata.
//
// File exposes the payload (the original file content without metadata),
// the Record (nil when the file carries none) and the comment lines.
// Mutate Record fields and Comments directly, then persist with Save or
// SaveAs, or render in memory with Bytes.
//
// Open reads the whole file up front; there is no handle to close.
//
//	file, err := sauce.Open("31337.ans")
//	if err != nil {
//		return err
//	}
//	if file.HasRecord() {
//		fmt.Println(file.Record.Title)
//	}
type File struct {
	types.File
}

// Open opens a file and reads its SAUCE metadata.
//
// Most files carry no SAUCE record; that is not an error. Check
// HasRecord before using Record, or use EnsureRecord to attach one.
//
// A record that declares comment lines the file cannot contain fails
// with a FormatError; pass WithLenientComments to demote that to a
// warning instead.
//
// Options can be provided to customize parsing behavior:
//
//	file, err := sauce.Open("31337.ans",
//	    sauce.WithRequireRecord(),
//	)
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return open(f, stat.Size(), path, options)
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Open(path, opts...)
}

// FromBytes parses SAUCE metadata from an in-memory byte sequence.
//
// The data is treated exactly like file content: the trailing 128 bytes
// are checked for a record, and the declared comment block is decoded
// from the bytes preceding it.
func FromBytes(data []byte, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return open(bytes.NewReader(data), int64(len(data)), "(bytes)", options)
}

// open parses from an io.ReaderAt and applies open options.
func open(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	parsed, err := codec.Parse(r, size, path, codec.ParseOptions{
		LenientComments: options.lenientComments,
	})
	if err != nil {
		return nil, err
	}

	file := &File{File: *parsed}

	if options.requireRecord && file.Record == nil {
		return nil, &types.NoRecordError{Path: path}
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0].Message)
	}

	return file, nil
}

// OpenMany opens multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails to open, an error is returned.
//
// Example:
//
//	files, err := sauce.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %s\n", f.Path, f.Record.Title)
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// HasRecord reports whether the file carries a SAUCE record.
func (f *File) HasRecord() bool {
	return f.Record != nil
}

// EnsureRecord returns the file's record, attaching a default one first
// if the file has none. Use this before setting metadata on a file that
// may not be tagged yet.
func (f *File) EnsureRecord() *Record {
	if f.Record == nil {
		f.Record = types.NewRecord()
	}
	return f.Record
}

// RemoveRecord strips all SAUCE metadata. A subsequent Save writes the
// bare payload.
func (f *File) RemoveRecord() {
	f.Record = nil
	f.Comments = nil
}

// Payload returns the original file content without the SAUCE record,
// comment block or EOF marker.
//
// The returned slice is the file's internal buffer and must not be
// modified.
func (f *File) Payload() []byte {
	return f.Payload_
}

// Bytes renders the complete output file in memory: the payload followed
// by the EOF marker, comment block and record. With no record attached
// it returns just the payload.
//
// Rendering updates Record.FileSize and Record.Comments to match the
// current payload and comment lines.
func (f *File) Bytes() ([]byte, error) {
	return codec.Render(f.Payload_, f.Record, f.Comments)
}
