// Package sauce reads and writes SAUCE metadata records.
//
// SAUCE (Standard Architecture for Universal Comment Extensions) is a
// fixed 128-byte metadata block appended to the tail of a file,
// historically used to attach authorship, title and rendering hints to
// text-art and related files. An optional free-text comment block of
// 64-byte lines may precede the record.
//
// # Quick Start
//
// Reading metadata:
//
//	file, err := sauce.Open("31337.ans")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if file.HasRecord() {
//		fmt.Printf("%s by %s\n", file.Record.Title, file.Record.Author)
//	}
//
// Most files carry no SAUCE record; Open succeeds with a nil Record in
// that case. Absence is the designed default, not an error.
//
// # Writing
//
// Mutate the record and comment lines, then persist:
//
//	rec := file.EnsureRecord()
//	rec.Title = "My Art"
//	rec.Author = "maze"
//	rec.DataType = sauce.DataTypeCharacter
//	rec.FileType = 1 // ANSi
//	file.Comments = []string{"greets to mononoke"}
//
//	err := file.Save(sauce.WithBackup(".bak"))
//
// Saves are atomic: output is written to a temporary file and renamed
// into place, so a failure never leaves a truncated file behind. The
// record's FileSize and Comments fields are recomputed on every save so
// the metadata always agrees with the payload it trails.
//
// # Binary Layout
//
// The on-disk structure, from the end of the file backwards:
//
//	[payload] [0x1A] [COMNT + 64-byte lines]? [128-byte SAUCE record]
//
// All multi-byte integers are little-endian. Text fields are CP437,
// space-padded to fixed widths; trailing padding is stripped on read.
// Text that cannot be represented in CP437 fails with an EncodingError
// naming the field, before anything is written.
//
// # Error Handling
//
// The package distinguishes three failure classes:
//
//   - Absence (not an error): file shorter than 128 bytes, or no record
//     signature. Open returns a File with a nil Record.
//   - FormatError: the record declares comment lines the file cannot
//     contain. Declared structure that cannot be honored is surfaced,
//     never silently ignored. WithLenientComments demotes it to a
//     warning.
//   - EncodingError: a field value does not fit its fixed width during
//     encode.
//
// I/O errors are propagated unchanged from the underlying operations.
//
// # Reference Data
//
// TypeName, FileTypeName and TInfoCaption translate the numeric
// DataType/FileType codes into the display names defined by the SAUCE
// specification, e.g. TypeName(sauce.DataTypeCharacter, 1) == "Character/ANSi".
package sauce
