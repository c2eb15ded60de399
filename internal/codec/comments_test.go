package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/sauce/internal/types"
)

func TestEncodeComments(t *testing.T) {
	t.Run("two lines make a 133-byte block", func(t *testing.T) {
		block, err := EncodeComments([]string{"first", "second"})
		require.NoError(t, err)

		require.Len(t, block, 5+2*64)
		assert.Equal(t, "COMNT", string(block[:5]))
		assert.Equal(t, "first"+strings.Repeat(" ", 59), string(block[5:69]))
		assert.Equal(t, "second"+strings.Repeat(" ", 58), string(block[69:133]))
	})

	t.Run("empty input encodes to nothing", func(t *testing.T) {
		block, err := EncodeComments(nil)
		require.NoError(t, err)
		assert.Empty(t, block)
	})

	t.Run("truncates lines to 64 bytes", func(t *testing.T) {
		long := strings.Repeat("y", 70)
		block, err := EncodeComments([]string{long})
		require.NoError(t, err)

		require.Len(t, block, 5+64)
		assert.Equal(t, strings.Repeat("y", 64), string(block[5:69]))
	})

	t.Run("rejects more than 255 lines", func(t *testing.T) {
		lines := make([]string, 256)
		_, err := EncodeComments(lines)

		var encErr *types.EncodingError
		require.ErrorAs(t, err, &encErr)
		assert.Equal(t, "Comments", encErr.Field)
	})

	t.Run("rejects lines with no CP437 representation", func(t *testing.T) {
		_, err := EncodeComments([]string{"fine", "日本語"})

		var encErr *types.EncodingError
		require.ErrorAs(t, err, &encErr)
		assert.Equal(t, "Comments[1]", encErr.Field)
	})
}

func TestDecodeComments(t *testing.T) {
	t.Run("round trips lines", func(t *testing.T) {
		lines := []string{"first", "second"}
		block, err := EncodeComments(lines)
		require.NoError(t, err)

		decoded, err := DecodeComments(block, 2, "test.ans")
		require.NoError(t, err)
		assert.Equal(t, lines, decoded)
	})

	t.Run("zero count is absent without error", func(t *testing.T) {
		decoded, err := DecodeComments(nil, 0, "test.ans")
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})

	t.Run("fails on signature mismatch", func(t *testing.T) {
		block, err := EncodeComments([]string{"first"})
		require.NoError(t, err)
		copy(block, "WRONG")

		_, err = DecodeComments(block, 1, "test.ans")

		var formatErr *types.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "test.ans", formatErr.Path)
		assert.Contains(t, formatErr.Error(), "signature mismatch")
	})

	t.Run("fails when block size disagrees with declared count", func(t *testing.T) {
		block, err := EncodeComments([]string{"first"})
		require.NoError(t, err)

		_, err = DecodeComments(block, 2, "test.ans")

		var formatErr *types.FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Contains(t, formatErr.Error(), "133 bytes")
	})

	t.Run("preserves empty lines", func(t *testing.T) {
		lines := []string{"", "middle", ""}
		block, err := EncodeComments(lines)
		require.NoError(t, err)

		decoded, err := DecodeComments(block, 3, "test.ans")
		require.NoError(t, err)
		assert.Equal(t, lines, decoded)
	})
}

func TestCommentBlockSize(t *testing.T) {
	assert.Equal(t, 0, CommentBlockSize(0))
	assert.Equal(t, 69, CommentBlockSize(1))
	assert.Equal(t, 133, CommentBlockSize(2))
	assert.Equal(t, 5+255*64, CommentBlockSize(255))
}
