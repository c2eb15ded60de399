package codec

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/sauce/internal/types"
)

func sampleRecord() *types.Record {
	return &types.Record{
		Version:  "00",
		Title:    "SAUCE test record",
		Author:   "maze",
		Group:    "mononoke",
		Date:     "20120315",
		FileSize: 1337,
		DataType: types.DataTypeCharacter,
		FileType: 1,
		TInfo1:   80,
		TInfo2:   25,
		Comments: 0,
		TFlags:   1,
		TInfoS:   "IBM VGA",
	}
}

func TestEncodeRecord(t *testing.T) {
	t.Run("is exactly 128 bytes", func(t *testing.T) {
		block, err := EncodeRecord(sampleRecord())
		require.NoError(t, err)
		assert.Len(t, block, RecordSize)
	})

	t.Run("lays out fields at fixed offsets", func(t *testing.T) {
		block, err := EncodeRecord(sampleRecord())
		require.NoError(t, err)

		assert.Equal(t, "SAUCE", string(block[0:5]))
		assert.Equal(t, "00", string(block[5:7]))
		assert.Equal(t, "SAUCE test record"+strings.Repeat(" ", 18), string(block[7:42]))
		assert.Equal(t, "maze"+strings.Repeat(" ", 16), string(block[42:62]))
		assert.Equal(t, "mononoke"+strings.Repeat(" ", 12), string(block[62:82]))
		assert.Equal(t, "20120315", string(block[82:90]))
		assert.Equal(t, uint32(1337), binary.LittleEndian.Uint32(block[90:94]))
		assert.Equal(t, byte(1), block[94]) // DataType
		assert.Equal(t, byte(1), block[95]) // FileType
		assert.Equal(t, uint16(80), binary.LittleEndian.Uint16(block[96:98]))
		assert.Equal(t, uint16(25), binary.LittleEndian.Uint16(block[98:100]))
		assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(block[100:102]))
		assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(block[102:104]))
		assert.Equal(t, byte(0), block[104]) // Comments
		assert.Equal(t, byte(1), block[105]) // TFlags
		assert.Equal(t, "IBM VGA"+strings.Repeat(" ", 15), string(block[106:128]))
	})

	t.Run("truncates overlong text to declared width", func(t *testing.T) {
		rec := sampleRecord()
		rec.Title = strings.Repeat("x", 40)

		block, err := EncodeRecord(rec)
		require.NoError(t, err)

		assert.Equal(t, strings.Repeat("x", 35), string(block[7:42]))

		decoded, ok := DecodeRecord(block)
		require.True(t, ok)
		assert.Equal(t, strings.Repeat("x", 35), decoded.Title)
	})

	t.Run("pads short text with trailing spaces", func(t *testing.T) {
		rec := sampleRecord()
		rec.Title = "abc"

		block, err := EncodeRecord(rec)
		require.NoError(t, err)

		assert.Equal(t, "abc"+strings.Repeat(" ", 32), string(block[7:42]))

		decoded, ok := DecodeRecord(block)
		require.True(t, ok)
		assert.Equal(t, "abc", decoded.Title)
	})

	t.Run("defaults an empty version to 00", func(t *testing.T) {
		rec := sampleRecord()
		rec.Version = ""

		block, err := EncodeRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, "00", string(block[5:7]))
	})

	t.Run("rejects text with no CP437 representation", func(t *testing.T) {
		rec := sampleRecord()
		rec.Author = "日本語"

		_, err := EncodeRecord(rec)
		require.Error(t, err)

		var encErr *types.EncodingError
		require.ErrorAs(t, err, &encErr)
		assert.Equal(t, "Author", encErr.Field)
	})

	t.Run("accepts CP437 box drawing characters", func(t *testing.T) {
		rec := sampleRecord()
		rec.Title = "╔═╗ art ╚═╝"

		block, err := EncodeRecord(rec)
		require.NoError(t, err)

		decoded, ok := DecodeRecord(block)
		require.True(t, ok)
		assert.Equal(t, "╔═╗ art ╚═╝", decoded.Title)
	})
}

func TestDecodeRecord(t *testing.T) {
	t.Run("round trips every field", func(t *testing.T) {
		rec := sampleRecord()
		rec.TInfo3 = 16
		rec.TInfo4 = 9
		rec.Comments = 3

		block, err := EncodeRecord(rec)
		require.NoError(t, err)

		decoded, ok := DecodeRecord(block)
		require.True(t, ok)
		assert.Equal(t, rec, decoded)
	})

	t.Run("reports absence for wrong signature", func(t *testing.T) {
		block, err := EncodeRecord(sampleRecord())
		require.NoError(t, err)
		copy(block, "NOPE!")

		decoded, ok := DecodeRecord(block)
		assert.False(t, ok)
		assert.Nil(t, decoded)
	})

	t.Run("reports absence for wrong block size", func(t *testing.T) {
		decoded, ok := DecodeRecord([]byte("SAUCE00 too short"))
		assert.False(t, ok)
		assert.Nil(t, decoded)
	})

	t.Run("strips NUL padding from legacy records", func(t *testing.T) {
		block, err := EncodeRecord(sampleRecord())
		require.NoError(t, err)

		// Rewrite the title as NUL-padded, as pre-00.5 writers did.
		copy(block[7:42], append([]byte("old school"), make([]byte, 25)...))

		decoded, ok := DecodeRecord(block)
		require.True(t, ok)
		assert.Equal(t, "old school", decoded.Title)
	})
}
