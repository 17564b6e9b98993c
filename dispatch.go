package scan

import (
	"github.com/scankit/scan/format"
	"github.com/scankit/scan/internal/reader"
	"github.com/scankit/scan/locale"
	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// readValue selects dst's reader and runs it over r. A nil spec selects the
// classic ReadDefault path; otherwise the reader honors the specification
// and, when it is localized, consults loc. dst is only written on success.
func readValue[C source.Char](r source.Range[C], dst any, sp *format.Spec, loc *locale.Locale) (source.Range[C], error) {
	switch dst := dst.(type) {
	case *bool:
		return run(r, reader.Bool[C]{}, dst, sp, loc)
	case *int:
		return run(r, reader.Int[int, C]{}, dst, sp, loc)
	case *int8:
		return run(r, reader.Int[int8, C]{}, dst, sp, loc)
	case *int16:
		return run(r, reader.Int[int16, C]{}, dst, sp, loc)
	case *int64:
		return run(r, reader.Int[int64, C]{}, dst, sp, loc)
	case *uint:
		return run(r, reader.Uint[uint, C]{}, dst, sp, loc)
	case *uint16:
		return run(r, reader.Uint[uint16, C]{}, dst, sp, loc)
	case *uint32:
		return run(r, reader.Uint[uint32, C]{}, dst, sp, loc)
	case *uint64:
		return run(r, reader.Uint[uint64, C]{}, dst, sp, loc)
	case *uintptr:
		return run(r, reader.Uint[uintptr, C]{}, dst, sp, loc)
	case *float32:
		return run(r, reader.Float[float32, C]{}, dst, sp, loc)
	case *float64:
		return run(r, reader.Float[float64, C]{}, dst, sp, loc)
	case *string:
		return run(r, reader.String[C]{}, dst, sp, loc)
	case *source.Range[C]:
		return run(r, reader.View[C]{}, dst, sp, loc)
	case *rune:
		return run(r, reader.DecodedRune[C]{}, dst, sp, loc)
	case *byte:
		return readByteChar(r, dst)
	default:
		return r, scanerr.Newf(scanerr.InvalidFormatString, -1,
			"unsupported destination type %T", dst)
	}
}

// run executes one reader against r and assigns the produced value on
// success.
func run[T any, C source.Char](r source.Range[C], rd reader.Reader[T, C], dst *T, sp *format.Spec, loc *locale.Locale) (source.Range[C], error) {
	var (
		v    T
		rest source.Range[C]
		err  error
	)
	if sp == nil {
		v, rest, err = rd.ReadDefault(r)
	} else {
		v, rest, err = rd.ReadSpec(r, *sp, loc)
	}
	if err != nil {
		return r, err
	}
	*dst = v
	return rest, nil
}

// readByteChar reads one unit into a byte destination. On wide input the
// unit must fit a byte.
func readByteChar[C source.Char](r source.Range[C], dst *byte) (source.Range[C], error) {
	v, rest, err := reader.CharUnit[C]{}.ReadDefault(r)
	if err != nil {
		return r, err
	}
	if rune(v) > 0xFF {
		return r, scanerr.New(scanerr.InvalidScannedValue, r.Offset(),
			"character does not fit a byte destination")
	}
	*dst = byte(v)
	return rest, nil
}

// checkSpec validates one compiled specification against its destination
// type. It runs once per format-string compilation, before any input is
// consumed.
func checkSpec[C source.Char](dst any, sp format.Spec) error {
	switch dst.(type) {
	case *bool:
		return reader.Bool[C]{}.CheckSpec(sp)
	case *int:
		return reader.Int[int, C]{}.CheckSpec(sp)
	case *int8:
		return reader.Int[int8, C]{}.CheckSpec(sp)
	case *int16:
		return reader.Int[int16, C]{}.CheckSpec(sp)
	case *int64:
		return reader.Int[int64, C]{}.CheckSpec(sp)
	case *uint:
		return reader.Uint[uint, C]{}.CheckSpec(sp)
	case *uint16:
		return reader.Uint[uint16, C]{}.CheckSpec(sp)
	case *uint32:
		return reader.Uint[uint32, C]{}.CheckSpec(sp)
	case *uint64:
		return reader.Uint[uint64, C]{}.CheckSpec(sp)
	case *uintptr:
		return reader.Uint[uintptr, C]{}.CheckSpec(sp)
	case *float32:
		return reader.Float[float32, C]{}.CheckSpec(sp)
	case *float64:
		return reader.Float[float64, C]{}.CheckSpec(sp)
	case *string:
		return reader.String[C]{}.CheckSpec(sp)
	case *source.Range[C]:
		return reader.View[C]{}.CheckSpec(sp)
	case *rune, *byte:
		return reader.CharUnit[C]{}.CheckSpec(sp)
	default:
		return scanerr.Newf(scanerr.InvalidFormatString, -1,
			"unsupported destination type %T", dst)
	}
}
