package sauce

import (
	"github.com/simonhull/sauce/internal/types"
)

// FormatError is an alias to types.FormatError.
// Re-exporting from internal/types to keep the public API in one package.
type FormatError = types.FormatError

// EncodingError is an alias to types.EncodingError.
// Re-exporting from internal/types to keep the public API in one package.
type EncodingError = types.EncodingError

// NoRecordError is an alias to types.NoRecordError.
// Re-exporting from internal/types to keep the public API in one package.
type NoRecordError = types.NoRecordError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to keep the public API in one package.
type Warning = types.Warning
