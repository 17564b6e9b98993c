package scanerr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintPlain(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, "12x34", New(InvalidScannedValue, 2, "expected a digit"), PrinterConfig{})
	require.NoError(t, err)

	expect := "error: invalid scanned value: expected a digit\n" +
		"  | 12x34\n" +
		"  |   ^\n"
	assert.Equal(t, expect, buf.String())
}

func TestFprintWindowsContext(t *testing.T) {
	input := "aaaaaaaaaaXbbbbbbbbbb"
	var buf bytes.Buffer
	err := Fprint(&buf, input, New(InvalidScannedValue, 10, "oops"), PrinterConfig{ContextUnits: 4})
	require.NoError(t, err)

	expect := "error: invalid scanned value: oops\n" +
		"  | aaaaXbbb\n" +
		"  |     ^\n"
	assert.Equal(t, expect, buf.String())
}

func TestFprintNoPosition(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, "input", New(InvalidFormatString, -1, "dangling brace"), PrinterConfig{})
	require.NoError(t, err)

	assert.Equal(t, "error: invalid format string: dangling brace\n", buf.String())
}

func TestFprintForeignError(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, "input", errors.New("boom"), PrinterConfig{})
	require.NoError(t, err)

	assert.Equal(t, "error: boom\n", buf.String())
}

func TestFprintSanitizesControlChars(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, "a\tb\nc", New(InvalidScannedValue, 4, "oops"), PrinterConfig{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "  | a.b.c\n")
}
