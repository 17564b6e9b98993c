package scan

import (
	"errors"

	"github.com/scankit/scan/format"
	"github.com/scankit/scan/internal/reader"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// Scan reads values from r as directed by a format string. Literal text in
// the format must match the input exactly; whitespace in the format matches
// any run of input whitespace; each replacement field reads one value into
// the corresponding destination.
//
// The format is compiled and validated against the destinations before any
// input is consumed, so a malformed format or a field incompatible with its
// destination type reports scanerr.InvalidFormatString with the input
// untouched. Reading fails fast: the first literal mismatch or reader
// failure is returned, with the range advanced past the last successfully
// matched segment.
//
// Localized fields ({:L...}) consult the classic locale; use ScanLoc to
// supply another one.
func Scan[C source.Char](r source.Range[C], fmtstr string, dsts ...any) (source.Range[C], error) {
	return ScanLoc(r, locale.Classic(), fmtstr, dsts...)
}

// ScanLoc is Scan with an explicit locale for localized fields.
func ScanLoc[C source.Char](r source.Range[C], loc *locale.Locale, fmtstr string, dsts ...any) (source.Range[C], error) {
	segs, err := format.Parse(fmtstr)
	if err != nil {
		return r, err
	}
	if err := validate[C](segs, dsts); err != nil {
		return r, err
	}

	cur := r
	argi := 0
	for _, seg := range segs {
		switch seg.Kind {
		case format.SegmentWhitespace:
			cur = reader.SkipSpace(cur)

		case format.SegmentLiteral:
			rest, err := reader.MatchLiteral(cur, seg.Lit)
			if err != nil {
				return cur, err
			}
			cur = rest

		case format.SegmentField:
			sp := seg.Spec
			dst := dsts[argi]
			argi++

			attempt := cur
			if sp.Presentation != format.PresentationChar && skipsLeadingSpace(dst) {
				attempt = reader.SkipSpace(attempt)
			}
			rest, err := readValue(attempt, dst, &sp, loc)
			if err != nil {
				return cur, err
			}
			cur = rest
		}
	}
	return cur, nil
}

// validate checks the compiled segments against the destinations: the field
// count must match the destination count, and every specification must be
// legal for its destination's type. All problems are reported together.
func validate[C source.Char](segs []format.Segment, dsts []any) error {
	var diags scanerr.Diagnostics

	fields := 0
	for _, seg := range segs {
		if seg.Kind != format.SegmentField {
			continue
		}
		if fields < len(dsts) {
			if err := checkSpec[C](dsts[fields], seg.Spec); err != nil {
				var e scanerr.Error
				if !errors.As(err, &e) {
					e = scanerr.New(scanerr.InvalidFormatString, -1, err.Error())
				}
				diags.Add(e)
			}
		}
		fields++
	}
	if fields != len(dsts) {
		diags.Add(scanerr.Newf(scanerr.InvalidFormatString, -1,
			"format has %d replacement fields but %d destinations were supplied",
			fields, len(dsts)))
	}
	return diags.ErrorOrNil()
}
