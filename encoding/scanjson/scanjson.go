// Package scanjson renders scanning outcomes as JSON, so external tooling
// can consume scanned values and structured failures without linking against
// the engine.
package scanjson

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/scankit/scan/scanerr"
	"github.com/scankit/scan/source"
)

// MarshalValues returns the JSON encoding of a sequence of scanned values as
// an array of {type, value} records. Views are rendered as their text.
func MarshalValues(vals ...any) ([]byte, error) {
	out := make([]any, 0, len(vals))
	for _, v := range vals {
		out = append(out, map[string]any{
			"type":  typeName(v),
			"value": plain(v),
		})
	}
	b, err := oj.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding scanned values: %w", err)
	}
	return b, nil
}

// MarshalError returns the JSON encoding of a scanning failure as a
// {kind, offset, message} record. Errors that carry no scanning Error render
// with an empty kind and offset -1.
func MarshalError(err error) ([]byte, error) {
	doc := map[string]any{
		"kind":    "",
		"offset":  -1,
		"message": err.Error(),
	}
	var e scanerr.Error
	if errors.As(err, &e) {
		doc["kind"] = e.Kind.String()
		doc["offset"] = e.Pos
		doc["message"] = e.Msg
	}
	b, merr := oj.Marshal(doc)
	if merr != nil {
		return nil, fmt.Errorf("encoding scan error: %w", merr)
	}
	return b, nil
}

func typeName(v any) string {
	switch v.(type) {
	case bool:
		return "bool"
	case int, int8, int16, int64:
		return "int"
	case uint, uint16, uint32, uint64, uintptr:
		return "uint"
	case float32, float64:
		return "float"
	case string:
		return "string"
	case byte, rune:
		return "char"
	case source.Range[byte], source.Range[rune]:
		return "view"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// plain lowers engine-specific values to JSON-friendly ones.
func plain(v any) any {
	switch v := v.(type) {
	case source.Range[byte]:
		return v.String()
	case source.Range[rune]:
		return v.String()
	case rune:
		return string(v)
	case byte:
		return string(rune(v))
	default:
		return v
	}
}
