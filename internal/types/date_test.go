package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "20120315", FormatDate(time.Date(2012, 3, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "19991231", FormatDate(time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("20120315")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2012, 3, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("blank and zero dates are unset, not malformed", func(t *testing.T) {
		for _, s := range []string{"", "        ", "00000000", "\x00\x00\x00\x00\x00\x00\x00\x00"} {
			got, err := ParseDate(s)
			require.NoError(t, err, "input %q", s)
			assert.True(t, got.IsZero(), "input %q", s)
		}
	})

	t.Run("malformed date errors", func(t *testing.T) {
		_, err := ParseDate("2012031")
		assert.Error(t, err)

		_, err = ParseDate("not-date")
		assert.Error(t, err)
	})
}

func TestRecord_DateRoundTrip(t *testing.T) {
	rec := NewRecord()
	rec.SetDate(time.Date(2024, 12, 25, 14, 0, 0, 0, time.UTC))
	assert.Equal(t, "20241225", rec.Date)

	got, err := rec.DateTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestNewRecord_Defaults(t *testing.T) {
	rec := NewRecord()
	assert.Equal(t, "00", rec.Version)
	assert.Len(t, rec.Date, 8)

	_, err := rec.DateTime()
	assert.NoError(t, err)
}

func TestRecord_ICEColors(t *testing.T) {
	rec := NewRecord()
	assert.False(t, rec.ICEColors())

	rec.TFlags = FlagICEColor
	assert.True(t, rec.ICEColors())
}
