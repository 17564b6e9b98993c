package format

import (
	"strings"
	"unicode"

	"github.com/scankit/scan/scanerr"
)

// Parse compiles a format string into segments. The syntax per field is
//
//	{ [:[width]['L'][type]] }
//
// where type is one of s d i u b o x X c f F e E g G a A p ?. Literal braces
// are written {{ and }}. Whitespace between fields compiles to a whitespace
// segment matching any amount of input whitespace.
//
// Parse reports scanerr.InvalidFormatString for unbalanced braces, unknown
// flags and malformed fields. It does not know the destination types; field
// count and per-type validation happen where the destinations are available.
func Parse(fmtstr string) ([]Segment, error) {
	var (
		segs []Segment
		lit  strings.Builder
	)

	flushLit := func() {
		if lit.Len() > 0 {
			segs = append(segs, Segment{Kind: SegmentLiteral, Lit: lit.String()})
			lit.Reset()
		}
	}

	rs := []rune(fmtstr)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '{':
			if i+1 < len(rs) && rs[i+1] == '{' {
				lit.WriteRune('{')
				i++
				continue
			}
			end := fieldEnd(rs, i+1)
			if end < 0 {
				return nil, scanerr.New(scanerr.InvalidFormatString, -1,
					"unterminated replacement field")
			}
			spec, err := parseSpec(string(rs[i+1 : end]))
			if err != nil {
				return nil, err
			}
			flushLit()
			segs = append(segs, Segment{Kind: SegmentField, Spec: spec})
			i = end
		case r == '}':
			if i+1 < len(rs) && rs[i+1] == '}' {
				lit.WriteRune('}')
				i++
				continue
			}
			return nil, scanerr.New(scanerr.InvalidFormatString, -1,
				"unmatched '}' in format string")
		case unicode.IsSpace(r):
			flushLit()
			if len(segs) == 0 || segs[len(segs)-1].Kind != SegmentWhitespace {
				segs = append(segs, Segment{Kind: SegmentWhitespace})
			}
		default:
			lit.WriteRune(r)
		}
	}
	flushLit()
	return segs, nil
}

func fieldEnd(rs []rune, from int) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == '}' {
			return i
		}
		if rs[i] == '{' {
			return -1
		}
	}
	return -1
}

// parseSpec compiles the text between the braces of one replacement field.
func parseSpec(body string) (Spec, error) {
	var spec Spec
	if body == "" {
		return spec, nil
	}
	if body[0] != ':' {
		// Manual argument indexing is not supported: fields map to
		// destinations in order.
		return spec, scanerr.Newf(scanerr.InvalidFormatString, -1,
			"expected ':' to begin field flags, got %q", body)
	}
	flags := []rune(body[1:])
	i := 0

	for i < len(flags) && flags[i] >= '0' && flags[i] <= '9' {
		spec.Width = spec.Width*10 + int(flags[i]-'0')
		i++
	}
	if i < len(flags) && flags[i] == 'L' {
		spec.Localized = true
		i++
	}
	if i < len(flags) {
		p, ok := presentationFor(flags[i])
		if !ok {
			return spec, scanerr.Newf(scanerr.InvalidFormatString, -1,
				"unknown presentation type %q", string(flags[i]))
		}
		spec.Presentation = p
		i++
	}
	if i != len(flags) {
		return spec, scanerr.Newf(scanerr.InvalidFormatString, -1,
			"trailing characters %q in replacement field", string(flags[i:]))
	}
	return spec, nil
}

func presentationFor(r rune) (Presentation, bool) {
	switch r {
	case 's', '?':
		return PresentationString, true
	case 'd':
		return PresentationInt, true
	case 'i':
		return PresentationIntDetect, true
	case 'u':
		return PresentationUnsigned, true
	case 'b', 'B':
		return PresentationBinary, true
	case 'o', 'O':
		return PresentationOctal, true
	case 'x', 'X':
		return PresentationHex, true
	case 'c':
		return PresentationChar, true
	case 'f', 'F', 'e', 'E', 'g', 'G':
		return PresentationFloat, true
	case 'a', 'A':
		return PresentationFloatHex, true
	case 'p':
		return PresentationPointer, true
	default:
		return PresentationNone, false
	}
}
