package codec

import (
	"fmt"
	"math"

	"github.com/simonhull/sauce/internal/types"
)

// Render reassembles a complete output file from the original payload,
// the record and the comment lines:
//
//	payload + EOF marker + comment block (if any) + record
//
// FileSize and Comments are derived from the inputs before encoding, so
// the record on disk always agrees with the payload it trails. A single
// EOF marker is appended only when the payload does not already end in
// one, which makes Render idempotent: rendering a previously rendered
// payload again produces byte-identical output.
//
// A nil record renders the bare payload, dropping any metadata.
//
// The payload slice is never modified.
func Render(payload []byte, rec *types.Record, comments []string) ([]byte, error) {
	if rec == nil {
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}

	if int64(len(payload)) > math.MaxUint32 {
		return nil, &types.EncodingError{
			Field:  "FileSize",
			Reason: fmt.Sprintf("payload of %d bytes exceeds the 32-bit maximum", len(payload)),
		}
	}

	commentBlock, err := EncodeComments(comments)
	if err != nil {
		return nil, err
	}

	rec.FileSize = uint32(len(payload))
	rec.Comments = uint8(len(comments))

	recordBlock, err := EncodeRecord(rec)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(payload)+1+len(commentBlock)+RecordSize)
	out = append(out, payload...)
	if n := len(payload); n == 0 || payload[n-1] != EOFMarker {
		out = append(out, EOFMarker)
	}
	out = append(out, commentBlock...)
	out = append(out, recordBlock...)

	return out, nil
}
