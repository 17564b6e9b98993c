package scanerr

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	contextStyle = color.New(color.Faint)
	caretStyle   = color.New(color.FgRed)
)

// PrinterConfig controls how Fprint renders an error.
type PrinterConfig struct {
	// Color enables ANSI color in the output. Colors are emitted through
	// fatih/color, which additionally honors NO_COLOR and non-TTY writers.
	Color bool

	// ContextUnits is how many units of input to show around the failure
	// position. Zero uses a sensible default.
	ContextUnits int
}

const defaultContextUnits = 40

// Fprint renders err against the input it was produced from, pointing a caret
// at the failure position when the error carries one. Errors that are not
// scanning Errors render as a single line.
func Fprint(w io.Writer, input string, err error, cfg PrinterConfig) error {
	if cfg.ContextUnits == 0 {
		cfg.ContextUnits = defaultContextUnits
	}

	prevNoColor := color.NoColor
	color.NoColor = !cfg.Color
	defer func() { color.NoColor = prevNoColor }()

	var e Error
	if !errors.As(err, &e) {
		_, werr := fmt.Fprintf(w, "%s %s\n", errorStyle.Sprint("error:"), err)
		return werr
	}

	if _, werr := fmt.Fprintf(w, "%s %s\n", errorStyle.Sprint("error:"), e.Error()); werr != nil {
		return werr
	}
	if e.Pos < 0 || e.Pos > len(input) {
		return nil
	}

	start := e.Pos - cfg.ContextUnits
	if start < 0 {
		start = 0
	}
	end := e.Pos + cfg.ContextUnits
	if end > len(input) {
		end = len(input)
	}

	line := sanitize(input[start:end])
	if _, werr := fmt.Fprintf(w, "  | %s\n", contextStyle.Sprint(line)); werr != nil {
		return werr
	}
	caret := strings.Repeat(" ", e.Pos-start) + caretStyle.Sprint("^")
	_, werr := fmt.Fprintf(w, "  | %s\n", caret)
	return werr
}

// sanitize replaces control characters so the context line stays on one
// terminal row with one cell per input byte.
func sanitize(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b == 0x7f {
			b = '.'
		}
		out[i] = b
	}
	return string(out)
}
