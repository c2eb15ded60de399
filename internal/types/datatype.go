package types

import "fmt"

// DataType classifies the kind of content a SAUCE-tagged payload holds.
type DataType uint8

const (
	// DataTypeNone is an undefined or unclassified payload.
	DataTypeNone DataType = iota
	// DataTypeCharacter is character-based art: ASCII, ANSi, RIP and friends.
	DataTypeCharacter
	// DataTypeBitmap is raster image data (GIF, PNG, BMP, ...).
	DataTypeBitmap
	// DataTypeVector is vector graphics data.
	DataTypeVector
	// DataTypeAudio is music and sampled sound data.
	DataTypeAudio
	// DataTypeBinaryText is raw binary screen data at a fixed width.
	DataTypeBinaryText
	// DataTypeXBin is eXtended BIN screen data.
	DataTypeXBin
	// DataTypeArchive is an archive of any of the above.
	DataTypeArchive
	// DataTypeExecutable is an executable script or program.
	DataTypeExecutable
)

// String returns the canonical SAUCE name of the data type.
func (d DataType) String() string {
	switch d {
	case DataTypeNone:
		return "None"
	case DataTypeCharacter:
		return "Character"
	case DataTypeBitmap:
		return "Bitmap"
	case DataTypeVector:
		return "Vector"
	case DataTypeAudio:
		return "Audio"
	case DataTypeBinaryText:
		return "BinaryText"
	case DataTypeXBin:
		return "XBin"
	case DataTypeArchive:
		return "Archive"
	case DataTypeExecutable:
		return "Executable"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(d))
	}
}

// FlagICEColor marks files rendered with iCE colors (no blinking).
// Meaningful for Character and BinaryText data types.
const FlagICEColor uint8 = 0x01

// fileTypeNames lists the sub-type names per data type, indexed by the
// FileType field. Data types without an entry have no named sub-types.
var fileTypeNames = map[DataType][]string{
	DataTypeCharacter: {
		"ASCII", "ANSi", "ANSiMation", "RIP", "PCBoard",
		"Avatar", "HTML", "Source",
	},
	DataTypeBitmap: {
		"GIF", "PCX", "LBM/IFF", "TGA", "FLI", "FLC", "BMP",
		"GL", "DL", "WPG", "PNG", "JPG", "MPG", "AVI",
	},
	DataTypeVector: {
		"DX", "DWG", "WPG", "3DS",
	},
	DataTypeAudio: {
		"MOD", "669", "STM", "S3M", "MTM", "FAR", "ULT", "AMF",
		"DMF", "OKT", "ROL", "CMF", "MIDI", "SADT", "VOC", "WAV",
		"SMP8", "SMP8S", "SMP16", "SMP16S", "PATCH8", "PATCH16",
		"XM", "HSC", "IT",
	},
	DataTypeArchive: {
		"ZIP", "ARJ", "LZH", "ARC", "TAR", "ZOO", "RAR",
		"UC2", "PAK", "SQZ",
	},
}

// FileTypeName returns the name of a (DataType, FileType) sub-type,
// or "" when the pair has no named sub-type.
func FileTypeName(d DataType, fileType uint8) string {
	names, ok := fileTypeNames[d]
	if !ok || int(fileType) >= len(names) {
		return ""
	}
	return names[fileType]
}

// TypeName returns the human-readable category of a (DataType, FileType)
// pair, e.g. "Character/ANSi" or "Bitmap/PNG". Data types without named
// sub-types yield just the data type name.
func TypeName(d DataType, fileType uint8) string {
	name := FileTypeName(d, fileType)
	if name == "" {
		return d.String()
	}
	return d.String() + "/" + name
}

// characterTInfo names the TInfo fields per Character sub-type.
var characterTInfo = [][4]string{
	{"width", "height", "", ""},       // ASCII
	{"width", "height", "", ""},       // ANSi
	{"width", "height", "", ""},       // ANSiMation
	{"width", "height", "colors", ""}, // RIP
	{"width", "height", "", ""},       // PCBoard
	{"width", "height", "", ""},       // Avatar
	{"", "", "", ""},                  // HTML
	{"", "", "", ""},                  // Source
}

// TInfoCaption names what the n-th TInfo field (1-4) means for a
// (DataType, FileType) pair, or "" when the field is unused.
func TInfoCaption(d DataType, fileType uint8, n int) string {
	if n < 1 || n > 4 {
		return ""
	}

	switch d {
	case DataTypeCharacter:
		if int(fileType) >= len(characterTInfo) {
			return ""
		}
		return characterTInfo[fileType][n-1]
	case DataTypeBitmap:
		switch n {
		case 1:
			return "width"
		case 2:
			return "height"
		case 3:
			return "bpp"
		}
	case DataTypeAudio:
		// Only the sampled sound sub-types carry a sampling rate.
		if n == 1 && fileType >= 16 && fileType <= 19 {
			return "sampling rate"
		}
	case DataTypeXBin:
		switch n {
		case 1:
			return "width"
		case 2:
			return "height"
		}
	}

	return ""
}
