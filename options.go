package sauce

// Option configures behavior when opening files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := sauce.Open("31337.ans",
//	    sauce.WithRequireRecord(),
//	    sauce.WithLenientComments(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	requireRecord   bool // Fail when no record is present
	lenientComments bool // Corrupt comment block becomes a warning
	strictParsing   bool // Fail on any warning
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		requireRecord:   false,
		lenientComments: false,
		strictParsing:   false,
	}
}

// WithRequireRecord fails Open with a NoRecordError when the file
// carries no SAUCE record.
//
// By default absence is not an error: Open returns a File with a nil
// Record, since most files have no metadata.
//
// Example:
//
//	file, err := sauce.Open("31337.ans", sauce.WithRequireRecord())
//	// err is a *NoRecordError if the file is untagged
func WithRequireRecord() Option {
	return func(o *openOptions) {
		o.requireRecord = true
	}
}

// WithLenientComments demotes a corrupt or truncated comment block from
// a fatal FormatError to a warning.
//
// By default a record that declares comment lines the file cannot
// contain fails Open, because declared structure cannot be honored.
// With this option the comment lines are dropped, a warning is recorded
// in File.Warnings, and the record itself is still returned.
//
// Example:
//
//	file, err := sauce.Open("mangled.ans", sauce.WithLenientComments())
//	// file.Comments is empty, file.Warnings explains why
func WithLenientComments() Option {
	return func(o *openOptions) {
		o.lenientComments = true
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default parsing continues when it encounters non-fatal issues, like
// a FileSize field that disagrees with the actual payload length, and
// records them in File.Warnings.
//
// Example:
//
//	file, err := sauce.Open("31337.ans", sauce.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}
