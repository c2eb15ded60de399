package types

import "fmt"

// FormatError is returned when the SAUCE record declares structure that
// the file cannot honor, such as a comment block with a missing signature
// or a file too short to contain the declared comment lines.
//
// A missing record is never a FormatError: absence is the normal state
// for files that carry no metadata.
type FormatError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *FormatError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%s: invalid SAUCE structure at offset %d: %s", e.Path, e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s: invalid SAUCE structure: %s", e.Path, e.Reason)
}

// EncodingError is returned when a field value cannot be represented in
// its fixed width during encode, either because the text has no CP437
// representation or a derived numeric value exceeds its byte width.
type EncodingError struct {
	Field  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode field %s: %s", e.Field, e.Reason)
}

// NoRecordError is returned by Open when WithRequireRecord is set and the
// file carries no SAUCE record.
type NoRecordError struct {
	Path string
}

func (e *NoRecordError) Error() string {
	return fmt.Sprintf("%s: no SAUCE record", e.Path)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate unusual data. Examples include:
//   - A FileSize field that disagrees with the actual payload length
//   - A corrupt comment block skipped under WithLenientComments
//
// Warnings are collected in File.Warnings during parsing.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "record", "comments"

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
