// Package codec implements the SAUCE binary layout: the fixed 128-byte
// record trailing a file, the optional comment block preceding it, and
// the rewrite procedure that reassembles a complete output file.
package codec

import (
	"bytes"
	gobinary "encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/sauce/internal/binary"
	"github.com/simonhull/sauce/internal/types"
)

// Fixed layout sizes. The record is always exactly RecordSize bytes and
// sits at the very end of the file.
const (
	RecordSize = 128

	// RecordID is the record signature. A trailing 128-byte block that
	// does not start with it means the file carries no SAUCE metadata.
	RecordID = "SAUCE"

	// EOFMarker separates the payload from the metadata block so that
	// DOS-era type commands stop before the record.
	EOFMarker = 0x1A

	versionWidth = 2
	titleWidth   = 35
	authorWidth  = 20
	groupWidth   = 20
	dateWidth    = 8
	tinfoSWidth  = 22
)

// Field offsets within the record.
const (
	offVersion  = 5
	offTitle    = 7
	offAuthor   = 42
	offGroup    = 62
	offDate     = 82
	offFileSize = 90
	offDataType = 94
	offFileType = 95
	offTInfo1   = 96
	offTInfo2   = 98
	offTInfo3   = 100
	offTInfo4   = 102
	offComments = 104
	offTFlags   = 105
	offTInfoS   = 106
)

// DecodeRecord decodes the fixed 128-byte record from block.
//
// The boolean result reports presence: a block of the wrong size or
// without the record signature yields (nil, false), which callers treat
// as "no metadata", never as an error.
func DecodeRecord(block []byte) (*types.Record, bool) {
	if len(block) != RecordSize {
		return nil, false
	}
	if string(block[:len(RecordID)]) != RecordID {
		return nil, false
	}

	sr := binary.NewSafeReader(bytes.NewReader(block), RecordSize, "sauce record")
	cr := binary.NewChainReader(binary.NewReader(sr, offVersion))

	rec := &types.Record{
		Version: decodeText(cr.Bytes(versionWidth, "version")),
		Title:   decodeText(cr.Bytes(titleWidth, "title")),
		Author:  decodeText(cr.Bytes(authorWidth, "author")),
		Group:   decodeText(cr.Bytes(groupWidth, "group")),
		Date:    decodeText(cr.Bytes(dateWidth, "date")),
	}
	rec.FileSize = binary.ReadChained[uint32](cr, "file size")
	rec.DataType = types.DataType(binary.ReadChained[uint8](cr, "data type"))
	rec.FileType = binary.ReadChained[uint8](cr, "file type")
	rec.TInfo1 = binary.ReadChained[uint16](cr, "tinfo1")
	rec.TInfo2 = binary.ReadChained[uint16](cr, "tinfo2")
	rec.TInfo3 = binary.ReadChained[uint16](cr, "tinfo3")
	rec.TInfo4 = binary.ReadChained[uint16](cr, "tinfo4")
	rec.Comments = binary.ReadChained[uint8](cr, "comment count")
	rec.TFlags = binary.ReadChained[uint8](cr, "flags")
	rec.TInfoS = decodeText(cr.Bytes(tinfoSWidth, "tinfos"))

	// Block length is checked above, so the chained reads cannot fail.
	if cr.Error() != nil {
		return nil, false
	}

	return rec, true
}

// EncodeRecord encodes rec into exactly 128 bytes.
//
// Text fields are truncated to their declared widths and right-padded
// with spaces. Numeric codes are emitted verbatim: invalid DataType or
// FileType values are the caller's responsibility.
func EncodeRecord(rec *types.Record) ([]byte, error) {
	buf := make([]byte, RecordSize)
	for i := offVersion; i < RecordSize; i++ {
		buf[i] = ' '
	}
	copy(buf, RecordID)

	version := rec.Version
	if version == "" {
		version = "00"
	}

	fields := []struct {
		name  string
		value string
		off   int
		width int
	}{
		{"Version", version, offVersion, versionWidth},
		{"Title", rec.Title, offTitle, titleWidth},
		{"Author", rec.Author, offAuthor, authorWidth},
		{"Group", rec.Group, offGroup, groupWidth},
		{"Date", rec.Date, offDate, dateWidth},
		{"TInfoS", rec.TInfoS, offTInfoS, tinfoSWidth},
	}
	for _, f := range fields {
		encoded, err := encodeText(f.name, f.value, f.width)
		if err != nil {
			return nil, err
		}
		copy(buf[f.off:f.off+f.width], encoded)
	}

	gobinary.LittleEndian.PutUint32(buf[offFileSize:], rec.FileSize)
	buf[offDataType] = byte(rec.DataType)
	buf[offFileType] = rec.FileType
	gobinary.LittleEndian.PutUint16(buf[offTInfo1:], rec.TInfo1)
	gobinary.LittleEndian.PutUint16(buf[offTInfo2:], rec.TInfo2)
	gobinary.LittleEndian.PutUint16(buf[offTInfo3:], rec.TInfo3)
	gobinary.LittleEndian.PutUint16(buf[offTInfo4:], rec.TInfo4)
	buf[offComments] = rec.Comments
	buf[offTFlags] = rec.TFlags

	return buf, nil
}

// decodeText strips trailing padding (spaces or NULs, both occur in the
// wild) and decodes the remaining CP437 bytes.
func decodeText(b []byte) string {
	trimmed := bytes.TrimRight(b, " \x00")
	if len(trimmed) == 0 {
		return ""
	}

	s, err := charmap.CodePage437.NewDecoder().Bytes(trimmed)
	if err != nil {
		// CP437 maps every byte, so this cannot happen; keep the raw
		// bytes rather than losing data if it somehow does.
		return string(trimmed)
	}
	return string(s)
}

// encodeText encodes s as CP437, truncated to width bytes. Padding to
// the full field width is the caller's concern.
func encodeText(field, s string, width int) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	encoded, err := charmap.CodePage437.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &types.EncodingError{
			Field:  field,
			Reason: fmt.Sprintf("%q has no CP437 representation", s),
		}
	}

	// CP437 is a single-byte encoding, so truncating bytes is
	// truncating characters.
	if len(encoded) > width {
		encoded = encoded[:width]
	}
	return encoded, nil
}
