// Package types provides core data structures for SAUCE file metadata.
//
// This package defines the Record, File, and Warning types that represent
// a parsed SAUCE metadata block, plus the typed errors shared between the
// codec and the public API.
package types

import "time"

// Record is the in-memory form of the fixed 128-byte SAUCE record that
// trails a file. Text fields hold their trimmed values; the codec pads
// and truncates them to their fixed widths on encode.
//
// All fields may be set directly. Width and range enforcement happens at
// encode time, never on assignment.
type Record struct {
	// Version is the SAUCE format version, two ASCII digits ("00").
	Version string

	// Title of the file, up to 35 characters.
	Title string

	// Author is the name or handle of the creator, up to 20 characters.
	Author string

	// Group the creator is employed by or member of, up to 20 characters.
	Group string

	// Date the file was created, as an 8-digit "YYYYMMDD" string.
	// Use SetDate and DateTime to convert to and from time.Time.
	Date string

	// FileSize is the size of the original payload, excluding the SAUCE
	// record, comment block and EOF marker. Recomputed on every save.
	FileSize uint32

	// DataType classifies the kind of content the payload holds.
	DataType DataType

	// FileType is a sub-type code whose meaning depends on DataType.
	FileType uint8

	// TInfo1 through TInfo4 are type-dependent numeric hints such as
	// width, height, colors or sampling rate. See TInfoCaption.
	TInfo1 uint16
	TInfo2 uint16
	TInfo3 uint16
	TInfo4 uint16

	// Comments is the number of 64-byte comment lines in the comment
	// block preceding the record. Recomputed on every save.
	Comments uint8

	// TFlags holds type-dependent rendering flags.
	TFlags uint8

	// TInfoS is a type-dependent string hint, typically a font name,
	// up to 22 characters.
	TInfoS string
}

// DateLayout is the time layout of the Date field.
const DateLayout = "20060102"

// NewRecord returns a record with the current SAUCE version and today's date.
func NewRecord() *Record {
	return &Record{
		Version: "00",
		Date:    FormatDate(time.Now()),
	}
}

// DateTime parses the Date field into a time.Time.
func (r *Record) DateTime() (time.Time, error) {
	return ParseDate(r.Date)
}

// SetDate sets the Date field from a time.Time.
func (r *Record) SetDate(t time.Time) {
	r.Date = FormatDate(t)
}

// ICEColors reports whether the iCE Color flag is set. The flag is only
// meaningful for Character and BinaryText data types.
func (r *Record) ICEColors() bool {
	return r.TFlags&FlagICEColor != 0
}
