package sauce

import (
	"time"

	"github.com/simonhull/sauce/internal/types"
)

// Record is an alias to types.Record.
// Re-exporting from internal/types to keep the public API in one package.
type Record = types.Record

// DataType is an alias to types.DataType.
type DataType = types.DataType

// Data type codes, one per kind of payload a record can classify.
const (
	DataTypeNone       = types.DataTypeNone
	DataTypeCharacter  = types.DataTypeCharacter
	DataTypeBitmap     = types.DataTypeBitmap
	DataTypeVector     = types.DataTypeVector
	DataTypeAudio      = types.DataTypeAudio
	DataTypeBinaryText = types.DataTypeBinaryText
	DataTypeXBin       = types.DataTypeXBin
	DataTypeArchive    = types.DataTypeArchive
	DataTypeExecutable = types.DataTypeExecutable
)

// FlagICEColor marks files rendered with iCE colors (no blinking).
const FlagICEColor = types.FlagICEColor

// NewRecord returns a record with the current SAUCE version and today's date.
func NewRecord() *Record {
	return types.NewRecord()
}

// TypeName returns the human-readable category of a (DataType, FileType)
// pair, e.g. "Character/ANSi" or "Bitmap/PNG".
func TypeName(d DataType, fileType uint8) string {
	return types.TypeName(d, fileType)
}

// FileTypeName returns the name of a (DataType, FileType) sub-type,
// or "" when the pair has no named sub-type.
func FileTypeName(d DataType, fileType uint8) string {
	return types.FileTypeName(d, fileType)
}

// TInfoCaption names what the n-th TInfo field (1-4) means for a
// (DataType, FileType) pair, or "" when the field is unused.
func TInfoCaption(d DataType, fileType uint8, n int) string {
	return types.TInfoCaption(d, fileType, n)
}

// FormatDate renders t as the 8-digit "YYYYMMDD" form used by the Date field.
func FormatDate(t time.Time) string {
	return types.FormatDate(t)
}

// ParseDate parses an 8-digit "YYYYMMDD" date string. Blank and
// zero-filled dates parse to the zero time without an error.
func ParseDate(s string) (time.Time, error) {
	return types.ParseDate(s)
}
