package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeBasics(t *testing.T) {
	r := FromString("hello")
	assert.Equal(t, 5, r.Len())
	assert.False(t, r.Empty())
	assert.Equal(t, 0, r.Offset())
	assert.Equal(t, byte('h'), r.First())
	assert.Equal(t, byte('l'), r.At(2))
	assert.Equal(t, "hello", r.String())

	var zero Range[byte]
	assert.True(t, zero.Empty())
	assert.Equal(t, "", zero.String())
}

func TestRangeAdvance(t *testing.T) {
	r := FromString("hello")

	r2 := r.Advance(2)
	assert.Equal(t, "llo", r2.String())
	assert.Equal(t, 2, r2.Offset())

	// Advancing is non-destructive: the original range is unchanged.
	assert.Equal(t, "hello", r.String())
	assert.Equal(t, 0, r.Offset())

	// Offsets accumulate across advances.
	r3 := r2.Advance(3)
	assert.True(t, r3.Empty())
	assert.Equal(t, 5, r3.Offset())
}

func TestRangeTake(t *testing.T) {
	r := FromString("hello world").Advance(6)
	pre := r.Take(5)
	assert.Equal(t, "world", pre.String())
	assert.Equal(t, 6, pre.Offset(), "prefix keeps the parent offset")
	assert.Equal(t, "world", r.String())
}

func TestRangeIndexOf(t *testing.T) {
	r := FromString("a,b,c")
	assert.Equal(t, 1, r.IndexOf(byte(',')))
	assert.Equal(t, -1, r.IndexOf(byte(';')))
	assert.Equal(t, -1, FromString("").IndexOf(byte('x')))
}

func TestWideRange(t *testing.T) {
	r := WideFromString("päivä")
	assert.Equal(t, 5, r.Len(), "wide length counts runes, not bytes")
	assert.Equal(t, 'ä', r.At(1))
	assert.Equal(t, "äivä", r.Advance(1).String())
}

func TestFromBytesAliases(t *testing.T) {
	b := []byte("abc")
	r := FromBytes(b)
	assert.Equal(t, "abc", r.String())

	b[0] = 'x'
	assert.Equal(t, "xbc", r.String())
}

func TestUnitsRoundTrip(t *testing.T) {
	assert.Equal(t, "日本", String(Units[byte]("日本")))
	assert.Equal(t, "日本", String(Units[rune]("日本")))
	assert.Len(t, Units[byte]("日本"), 6)
	assert.Len(t, Units[rune]("日本"), 2)
}

func TestDecodeRune(t *testing.T) {
	c, size, ok := DecodeRune(FromString("äx"))
	require.True(t, ok)
	assert.Equal(t, 'ä', c)
	assert.Equal(t, 2, size)

	c, size, ok = DecodeRune(FromString("a"))
	require.True(t, ok)
	assert.Equal(t, 'a', c)
	assert.Equal(t, 1, size)

	_, _, ok = DecodeRune(FromBytes([]byte{0xff}))
	assert.False(t, ok)

	_, _, ok = DecodeRune(FromString(""))
	assert.False(t, ok)

	// Wide decoding is a one-unit read regardless of the rune.
	c, size, ok = DecodeRune(WideFromString("日本"))
	require.True(t, ok)
	assert.Equal(t, '日', c)
	assert.Equal(t, 1, size)
}
