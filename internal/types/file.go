package types

// File represents an opened file together with its parsed SAUCE metadata.
//
// Record is nil when the file carries no SAUCE record; that is the normal
// state for most files, not an error.
type File struct {
	Payload_ []byte //nolint:revive // Underscore indicates internal/unexported semantics
	Path     string
	Record   *Record
	Comments []string
	Warnings []Warning
	Size     int64
}
