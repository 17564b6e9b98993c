package reader

import (
	"github.com/scankit/scan/format"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

func checkCharSpec(sp format.Spec) error {
	switch sp.Presentation {
	case format.PresentationNone, format.PresentationChar:
		return nil
	default:
		return scanerr.Newf(scanerr.InvalidFormatString, -1,
			"%s presentation is not valid for characters", sp.Presentation)
	}
}

// CharUnit reads exactly one code unit of the input's own width.
type CharUnit[C source.Char] struct{}

// CheckSpec implements Reader.
func (CharUnit[C]) CheckSpec(sp format.Spec) error { return checkCharSpec(sp) }

// ReadDefault implements Reader.
func (CharUnit[C]) ReadDefault(r source.Range[C]) (C, source.Range[C], error) {
	if r.Empty() {
		return 0, r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
	}
	return r.First(), r.Advance(1), nil
}

// ReadSpec implements Reader.
func (CharUnit[C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (C, source.Range[C], error) {
	return CharUnit[C]{}.ReadDefault(r)
}

// DecodedRune reads one rune. On narrow input this decodes a whole UTF-8
// sequence, consuming as many units as the encoding spans; on wide input it
// is a single-unit read.
type DecodedRune[C source.Char] struct{}

// CheckSpec implements Reader.
func (DecodedRune[C]) CheckSpec(sp format.Spec) error { return checkCharSpec(sp) }

// ReadDefault implements Reader.
func (DecodedRune[C]) ReadDefault(r source.Range[C]) (rune, source.Range[C], error) {
	if r.Empty() {
		return 0, r, scanerr.New(scanerr.EndOfRange, r.Offset(), "input exhausted")
	}
	c, size, ok := source.DecodeRune(r)
	if !ok {
		return 0, r, scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
			"invalid character encoding")
	}
	return c, r.Advance(size), nil
}

// ReadSpec implements Reader.
func (DecodedRune[C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (rune, source.Range[C], error) {
	return DecodedRune[C]{}.ReadDefault(r)
}
