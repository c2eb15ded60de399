package codec

import (
	"bytes"
	"fmt"

	"github.com/simonhull/sauce/internal/binary"
	"github.com/simonhull/sauce/internal/types"
)

const (
	// CommentID is the comment block signature.
	CommentID = "COMNT"

	// CommentLineWidth is the fixed width of a single comment line.
	CommentLineWidth = 64

	// MaxCommentLines is the largest count the one-byte Comments field
	// can declare.
	MaxCommentLines = 255
)

// CommentBlockSize returns the encoded size of a comment block holding
// count lines: the 5-byte signature plus 64 bytes per line. A count of
// zero means no block at all.
func CommentBlockSize(count uint8) int {
	if count == 0 {
		return 0
	}
	return len(CommentID) + CommentLineWidth*int(count)
}

// DecodeComments decodes the comment block for a record declaring count
// comment lines. The block must be exactly CommentBlockSize(count) bytes
// ending where the record begins.
//
// Unlike a missing record, a declared-but-unreadable comment block is a
// FormatError: the record promised structure the file does not have.
func DecodeComments(block []byte, count uint8, path string) ([]string, error) {
	if count == 0 {
		return nil, nil
	}

	want := CommentBlockSize(count)
	if len(block) != want {
		return nil, &types.FormatError{
			Path:   path,
			Reason: fmt.Sprintf("comment block declares %d lines (%d bytes), got %d bytes", count, want, len(block)),
		}
	}

	if string(block[:len(CommentID)]) != CommentID {
		return nil, &types.FormatError{
			Path:   path,
			Reason: fmt.Sprintf("comment block signature mismatch: expected %q, got %q", CommentID, block[:len(CommentID)]),
		}
	}

	lines := make([]string, count)
	for i := range lines {
		start := len(CommentID) + i*CommentLineWidth
		lines[i] = decodeText(block[start : start+CommentLineWidth])
	}

	return lines, nil
}

// EncodeComments encodes lines into a comment block: the signature
// followed by each line truncated or space-padded to 64 bytes. An empty
// slice encodes to nil; the caller must then declare zero comments in
// the record.
func EncodeComments(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	if len(lines) > MaxCommentLines {
		return nil, &types.EncodingError{
			Field:  "Comments",
			Reason: fmt.Sprintf("%d comment lines exceed the maximum of %d", len(lines), MaxCommentLines),
		}
	}

	var buf bytes.Buffer
	buf.Grow(CommentBlockSize(uint8(len(lines))))
	sw := binary.NewSafeWriter(&buf)

	if err := sw.WriteString(CommentID); err != nil {
		return nil, err
	}
	for i, line := range lines {
		encoded, err := encodeText(fmt.Sprintf("Comments[%d]", i), line, CommentLineWidth)
		if err != nil {
			return nil, err
		}
		if err := sw.WritePadded(encoded, CommentLineWidth, ' '); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
