package reader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scankit/scan/format"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

func TestIntReadDefault(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int64
		remainder string
		kind      scanerr.Kind
	}{
		{"simple", "42", 42, "", 0},
		{"stops at non-digit", "123abc", 123, "abc", 0},
		{"negative", "-17", -17, "", 0},
		{"explicit plus", "+9", 9, "", 0},
		{"zero", "0", 0, "", 0},
		{"default base is ten", "0x1F", 0, "x1F", 0},
		{"sign alone", "-", 0, "", scanerr.InvalidScannedValue},
		{"no digits", "abc", 0, "", scanerr.InvalidScannedValue},
		{"empty", "", 0, "", scanerr.EndOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, rest, err := Int[int64, byte]{}.ReadDefault(source.FromString(tc.input))
			if tc.kind != 0 {
				assert.Equal(t, tc.kind, scanerr.KindOf(err))
				assert.Equal(t, tc.input, rest.String(), "failed read must not consume")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.remainder, rest.String())
		})
	}
}

func TestIntBounds(t *testing.T) {
	v8, _, err := Int[int8, byte]{}.ReadDefault(source.FromString("127"))
	require.NoError(t, err)
	assert.Equal(t, int8(127), v8)

	_, _, err = Int[int8, byte]{}.ReadDefault(source.FromString("128"))
	assert.Equal(t, scanerr.ValueOutOfRange, scanerr.KindOf(err))

	v8, _, err = Int[int8, byte]{}.ReadDefault(source.FromString("-128"))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v8)

	_, _, err = Int[int8, byte]{}.ReadDefault(source.FromString("-129"))
	assert.Equal(t, scanerr.ValueOutOfRange, scanerr.KindOf(err))

	v64, _, err := Int[int64, byte]{}.ReadDefault(source.FromString("-9223372036854775808"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v64)

	// Far past uint64 as well.
	_, _, err = Int[int64, byte]{}.ReadDefault(source.FromString("99999999999999999999999999"))
	assert.Equal(t, scanerr.ValueOutOfRange, scanerr.KindOf(err))
}

func TestUintReadDefault(t *testing.T) {
	v, rest, err := Uint[uint16, byte]{}.ReadDefault(source.FromString("65535 "))
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), v)
	assert.Equal(t, " ", rest.String())

	_, _, err = Uint[uint16, byte]{}.ReadDefault(source.FromString("65536"))
	assert.Equal(t, scanerr.ValueOutOfRange, scanerr.KindOf(err))

	// The minus sign is not part of any unsigned form.
	_, rest2, err := Uint[uint16, byte]{}.ReadDefault(source.FromString("-3"))
	assert.Equal(t, scanerr.InvalidScannedValue, scanerr.KindOf(err))
	assert.Equal(t, "-3", rest2.String())
}

func TestIntSpecBases(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		sp        format.Spec
		want      int64
		remainder string
	}{
		{"hex", "ff!", format.Spec{Presentation: format.PresentationHex}, 255, "!"},
		{"hex with prefix", "0xff", format.Spec{Presentation: format.PresentationHex}, 255, ""},
		{"binary", "1011", format.Spec{Presentation: format.PresentationBinary}, 11, ""},
		{"octal", "755", format.Spec{Presentation: format.PresentationOctal}, 493, ""},
		{"detect hex", "0x1F", format.Spec{Presentation: format.PresentationIntDetect}, 31, ""},
		{"detect binary", "0b101", format.Spec{Presentation: format.PresentationIntDetect}, 5, ""},
		{"detect octal prefix", "0o17", format.Spec{Presentation: format.PresentationIntDetect}, 15, ""},
		{"detect bare octal", "017", format.Spec{Presentation: format.PresentationIntDetect}, 15, ""},
		{"detect decimal", "17", format.Spec{Presentation: format.PresentationIntDetect}, 17, ""},
		{"detect lone zero", "0", format.Spec{Presentation: format.PresentationIntDetect}, 0, ""},
		{"detect dangling prefix", "0x", format.Spec{Presentation: format.PresentationIntDetect}, 0, "x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, rest, err := Int[int64, byte]{}.ReadSpec(source.FromString(tc.input), tc.sp, locale.Classic())
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.remainder, rest.String())
		})
	}
}

func TestIntSpecUnsignedPresentation(t *testing.T) {
	// "u" disables the minus sign even for signed destinations.
	sp := format.Spec{Presentation: format.PresentationUnsigned}
	_, _, err := Int[int64, byte]{}.ReadSpec(source.FromString("-5"), sp, locale.Classic())
	assert.Equal(t, scanerr.InvalidScannedValue, scanerr.KindOf(err))

	v, _, err := Int[int64, byte]{}.ReadSpec(source.FromString("5"), sp, locale.Classic())
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func TestIntSpecCharPresentation(t *testing.T) {
	sp := format.Spec{Presentation: format.PresentationChar}
	v, rest, err := Int[int64, byte]{}.ReadSpec(source.FromString("A1"), sp, locale.Classic())
	require.NoError(t, err)
	assert.Equal(t, int64('A'), v)
	assert.Equal(t, "1", rest.String())
}

func TestIntLocalizedGrouping(t *testing.T) {
	de, ok := locale.Lookup("de")
	require.True(t, ok)

	sp := format.Spec{Presentation: format.PresentationInt, Localized: true}
	v, rest, err := Int[int64, byte]{}.ReadSpec(source.FromString("1.234.567!"), sp, de)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567), v)
	assert.Equal(t, "!", rest.String())

	// A separator with no digit after it is not part of the number.
	v, rest, err = Int[int64, byte]{}.ReadSpec(source.FromString("12."), sp, de)
	require.NoError(t, err)
	assert.Equal(t, int64(12), v)
	assert.Equal(t, ".", rest.String())
}

func TestIntCheckSpec(t *testing.T) {
	assert.NoError(t, Int[int, byte]{}.CheckSpec(format.Spec{}))
	assert.NoError(t, Int[int, byte]{}.CheckSpec(format.Spec{Presentation: format.PresentationHex}))

	err := Int[int, byte]{}.CheckSpec(format.Spec{Presentation: format.PresentationFloat})
	assert.Equal(t, scanerr.InvalidFormatString, scanerr.KindOf(err))

	// Pointer presentation is reserved for uintptr destinations.
	err = Int[int, byte]{}.CheckSpec(format.Spec{Presentation: format.PresentationPointer})
	assert.Equal(t, scanerr.InvalidFormatString, scanerr.KindOf(err))
	assert.NoError(t, Uint[uintptr, byte]{}.CheckSpec(format.Spec{Presentation: format.PresentationPointer}))
}

func TestUintPointerSpec(t *testing.T) {
	sp := format.Spec{Presentation: format.PresentationPointer}
	v, rest, err := Uint[uintptr, byte]{}.ReadSpec(source.FromString("0xdeadbeef rest"), sp, locale.Classic())
	require.NoError(t, err)
	assert.Equal(t, uintptr(0xdeadbeef), v)
	assert.Equal(t, " rest", rest.String())
}

func TestIntWide(t *testing.T) {
	v, rest, err := Int[int, rune]{}.ReadDefault(source.WideFromString("-42µ"))
	require.NoError(t, err)
	assert.Equal(t, -42, v)
	assert.Equal(t, "µ", rest.String())
}
