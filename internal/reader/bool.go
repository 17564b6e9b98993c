package reader

import (
	"github.com/scankit/scan/format"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// boolOptions is the set of boolean representations enabled for one read.
// The default enables every representation.
type boolOptions struct {
	allowText    bool
	allowNumeric bool
}

func boolOptionsFor(sp format.Spec) boolOptions {
	switch {
	case sp.Presentation == format.PresentationString:
		return boolOptions{allowText: true}
	case sp.IntLike():
		return boolOptions{allowNumeric: true}
	default:
		return boolOptions{allowText: true, allowNumeric: true}
	}
}

// Bool reads boolean values. The numeric forms are the single units '0' and
// '1'; the classic textual forms are "true" and "false". Localized reads
// replace the textual forms with the locale's spellings.
type Bool[C source.Char] struct{}

// CheckSpec implements Reader.
func (Bool[C]) CheckSpec(sp format.Spec) error {
	switch {
	case sp.Presentation == format.PresentationNone,
		sp.Presentation == format.PresentationString,
		sp.IntLike() && sp.Presentation != format.PresentationPointer:
		return nil
	default:
		return scanerr.Newf(scanerr.InvalidFormatString, -1,
			"%s presentation is not valid for booleans", sp.Presentation)
	}
}

// ReadDefault implements Reader.
func (Bool[C]) ReadDefault(r source.Range[C]) (bool, source.Range[C], error) {
	return readBool(r, boolOptions{allowText: true, allowNumeric: true}, locale.Classic())
}

// ReadSpec implements Reader.
func (Bool[C]) ReadSpec(r source.Range[C], sp format.Spec, loc *locale.Locale) (bool, source.Range[C], error) {
	if !sp.Localized {
		loc = locale.Classic()
	}
	return readBool(r, boolOptionsFor(sp), loc)
}

// readBool tries the enabled representations in a fixed order: the numeric
// forms first, then the textual forms. When every enabled attempt fails, the
// last attempt's error is the one reported.
func readBool[C source.Char](r source.Range[C], opts boolOptions, loc *locale.Locale) (bool, source.Range[C], error) {
	err := error(scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
		"failed to read boolean"))

	if opts.allowNumeric {
		v, rest, nerr := readBoolNumeric(r)
		if nerr == nil {
			return v, rest, nil
		}
		err = nerr
	}

	if opts.allowText {
		v, rest, terr := readBoolTextual(r, loc)
		if terr == nil {
			return v, rest, nil
		}
		err = terr
	}

	return false, r, err
}

func readBoolNumeric[C source.Char](r source.Range[C]) (bool, source.Range[C], error) {
	if rest, err := MatchCodeUnit(r, C('0')); err == nil {
		return false, rest, nil
	}
	if rest, err := MatchCodeUnit(r, C('1')); err == nil {
		return true, rest, nil
	}
	return false, r, scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
		"no numeric boolean form matched")
}

// readBoolTextual matches the two spellings with the shorter-first rule, so a
// spelling that is a prefix of the other still wins when it occurs.
func readBoolTextual[C source.Char](r source.Range[C], loc *locale.Locale) (bool, source.Range[C], error) {
	idx, rest, err := MatchOneOf(r,
		source.Units[C](loc.Truename),
		source.Units[C](loc.Falsename))
	if err != nil {
		return false, r, scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
			"no textual boolean form matched")
	}
	return idx == 0, rest, nil
}
