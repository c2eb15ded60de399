package codec

import (
	"fmt"
	"io"

	"github.com/simonhull/sauce/internal/binary"
	"github.com/simonhull/sauce/internal/types"
)

// ParseOptions controls non-default parsing behavior.
type ParseOptions struct {
	// LenientComments demotes a corrupt or truncated comment block from
	// a FormatError to a warning; the comment lines are dropped.
	LenientComments bool
}

// Parse reads a complete file from r and splits it into payload, record
// and comment lines.
//
// Files shorter than 128 bytes, or whose trailing block lacks the record
// signature, parse successfully with a nil Record: absence is the normal
// state, not an error. A record that declares comment lines the file
// cannot contain is a FormatError unless LenientComments is set.
func Parse(r io.ReaderAt, size int64, path string, opts ParseOptions) (*types.File, error) {
	f := &types.File{Path: path, Size: size}
	sr := binary.NewSafeReader(r, size, path)

	if size < RecordSize {
		if size > 0 {
			payload := make([]byte, size)
			if err := sr.ReadAt(payload, 0, "payload"); err != nil {
				return nil, err
			}
			f.Payload_ = payload
		}
		return f, nil
	}

	block := make([]byte, RecordSize)
	if err := sr.ReadAt(block, size-RecordSize, "sauce record"); err != nil {
		return nil, err
	}

	rec, ok := DecodeRecord(block)
	if !ok {
		payload := make([]byte, size)
		if err := sr.ReadAt(payload, 0, "payload"); err != nil {
			return nil, err
		}
		f.Payload_ = payload
		return f, nil
	}
	f.Record = rec

	metaLen := int64(RecordSize)
	if rec.Comments > 0 {
		lines, blockLen, err := parseComments(sr, rec.Comments, path)
		switch {
		case err != nil && opts.LenientComments:
			f.Warnings = append(f.Warnings, types.Warning{
				Stage:   "comments",
				Message: err.Error(),
			})
		case err != nil:
			return nil, err
		default:
			f.Comments = lines
			metaLen += blockLen
		}
	}

	payload := make([]byte, size-metaLen)
	if len(payload) > 0 {
		if err := sr.ReadAt(payload, 0, "payload"); err != nil {
			return nil, err
		}
	}

	// A single trailing EOF marker belongs to the metadata, not the payload.
	if n := len(payload); n > 0 && payload[n-1] == EOFMarker {
		payload = payload[:n-1]
	}
	f.Payload_ = payload

	if rec.FileSize != 0 && int64(rec.FileSize) != int64(len(payload)) {
		f.Warnings = append(f.Warnings, types.Warning{
			Stage:   "record",
			Message: fmt.Sprintf("FileSize field is %d but payload is %d bytes", rec.FileSize, len(payload)),
		})
	}

	return f, nil
}

// parseComments locates and decodes the comment block immediately
// preceding the record. The declared line count bounds the read: a file
// too short to hold the block fails before any out-of-range read.
func parseComments(sr *binary.SafeReader, count uint8, path string) ([]string, int64, error) {
	need := int64(CommentBlockSize(count))
	if sr.Size() < RecordSize+need {
		return nil, 0, &types.FormatError{
			Path: path,
			Reason: fmt.Sprintf("record declares %d comment lines (%d bytes) but only %d bytes precede the record",
				count, need, sr.Size()-RecordSize),
		}
	}

	start := sr.Size() - RecordSize - need
	block := make([]byte, need)
	if err := sr.ReadAt(block, start, "comment block"); err != nil {
		return nil, 0, err
	}

	lines, err := DecodeComments(block, count, path)
	if err != nil {
		if fe, isFormat := err.(*types.FormatError); isFormat {
			fe.Offset = start
		}
		return nil, 0, err
	}

	return lines, need, nil
}
