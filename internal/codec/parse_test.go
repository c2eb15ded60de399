package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/sauce/internal/types"
)

// tagged builds a complete file: payload + marker + comment block + record.
func tagged(t *testing.T, payload []byte, rec *types.Record, comments []string) []byte {
	t.Helper()
	out, err := Render(payload, rec, comments)
	require.NoError(t, err)
	return out
}

func TestParse(t *testing.T) {
	t.Run("file shorter than a record is absent, never an error", func(t *testing.T) {
		for _, data := range [][]byte{nil, []byte("x"), bytes.Repeat([]byte("y"), 127)} {
			f, err := Parse(bytes.NewReader(data), int64(len(data)), "short.ans", ParseOptions{})
			require.NoError(t, err)
			assert.Nil(t, f.Record)
			assert.Equal(t, len(data), len(f.Payload_))
		}
	})

	t.Run("no signature means no metadata", func(t *testing.T) {
		data := bytes.Repeat([]byte("z"), 200)

		f, err := Parse(bytes.NewReader(data), int64(len(data)), "plain.ans", ParseOptions{})
		require.NoError(t, err)
		assert.Nil(t, f.Record)
		assert.Equal(t, data, f.Payload_)
	})

	t.Run("parses record and payload", func(t *testing.T) {
		data := tagged(t, []byte("art content"), sampleRecord(), nil)

		f, err := Parse(bytes.NewReader(data), int64(len(data)), "art.ans", ParseOptions{})
		require.NoError(t, err)
		require.NotNil(t, f.Record)
		assert.Equal(t, "SAUCE test record", f.Record.Title)
		assert.Equal(t, []byte("art content"), f.Payload_)
		assert.Empty(t, f.Warnings)
	})

	t.Run("parses the declared comment block", func(t *testing.T) {
		data := tagged(t, []byte("art"), sampleRecord(), []string{"first", "second"})

		f, err := Parse(bytes.NewReader(data), int64(len(data)), "art.ans", ParseOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, f.Comments)
		assert.Equal(t, []byte("art"), f.Payload_)
	})

	t.Run("declared comments beyond file start fail with FormatError", func(t *testing.T) {
		rec := sampleRecord()
		block, err := EncodeRecord(rec)
		require.NoError(t, err)
		block[offComments] = 5 // declares 325 bytes that do not exist

		data := append([]byte("tiny"), block...)

		_, err = Parse(bytes.NewReader(data), int64(len(data)), "trunc.ans", ParseOptions{})

		var formatErr *types.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "trunc.ans", formatErr.Path)
		assert.Contains(t, formatErr.Error(), "5 comment lines")
	})

	t.Run("comment signature mismatch fails with FormatError", func(t *testing.T) {
		data := tagged(t, []byte("art"), sampleRecord(), []string{"first"})
		// Corrupt the comment block signature in place.
		idx := bytes.Index(data, []byte(CommentID))
		require.GreaterOrEqual(t, idx, 0)
		copy(data[idx:], "XXXXX")

		_, err := Parse(bytes.NewReader(data), int64(len(data)), "bad.ans", ParseOptions{})

		var formatErr *types.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, int64(idx), formatErr.Offset)
	})

	t.Run("lenient mode demotes comment corruption to a warning", func(t *testing.T) {
		rec := sampleRecord()
		block, err := EncodeRecord(rec)
		require.NoError(t, err)
		block[offComments] = 5

		data := append([]byte("tiny"), block...)

		f, err := Parse(bytes.NewReader(data), int64(len(data)), "trunc.ans", ParseOptions{LenientComments: true})
		require.NoError(t, err)
		require.NotNil(t, f.Record)
		assert.Empty(t, f.Comments)
		require.Len(t, f.Warnings, 1)
		assert.Equal(t, "comments", f.Warnings[0].Stage)
	})

	t.Run("warns when FileSize disagrees with the payload", func(t *testing.T) {
		rec := sampleRecord()
		data := tagged(t, []byte("12345"), rec, nil)

		// Overwrite FileSize with a lie.
		data[len(data)-RecordSize+offFileSize] = 99

		f, err := Parse(bytes.NewReader(data), int64(len(data)), "liar.ans", ParseOptions{})
		require.NoError(t, err)
		require.Len(t, f.Warnings, 1)
		assert.Equal(t, "record", f.Warnings[0].Stage)
		assert.Contains(t, f.Warnings[0].Message, "FileSize")
	})

	t.Run("strips a single trailing EOF marker from the payload", func(t *testing.T) {
		data := tagged(t, []byte{'a', 'b', EOFMarker}, sampleRecord(), nil)

		f, err := Parse(bytes.NewReader(data), int64(len(data)), "marked.ans", ParseOptions{})
		require.NoError(t, err)
		// Only the marker between payload and metadata is stripped.
		assert.Equal(t, []byte("ab"), f.Payload_)
	})
}
