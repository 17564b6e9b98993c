// Package locale supplies the locale-dependent tokens consulted by localized
// scanning: the spellings of true and false, the decimal point, and the digit
// group separator.
//
// The engine treats a Locale as an opaque, read-only lookup passed explicitly
// through every call that needs it. There is no ambient or process-global
// locale state, which keeps scanning reentrant and lets tests inject
// synthetic locales.
//
// A small builtin table ships with the package as embedded YAML; callers can
// also define their own locales from YAML documents with the same shape:
//
//	name: de
//	truename: wahr
//	falsename: falsch
//	decimal_point: ","
//	group_separator: "."
package locale

import (
	_ "embed"
	"fmt"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Locale holds the scanning-relevant tokens of one locale. Fields are
// read-only after construction; a Locale is safe for concurrent use.
type Locale struct {
	// Name identifies the locale, e.g. "C" or "de".
	Name string

	// Truename and Falsename are the textual spellings of the two boolean
	// values.
	Truename  string
	Falsename string

	// DecimalPoint separates the integral and fractional digits of a
	// floating-point value.
	DecimalPoint rune

	// GroupSeparator optionally groups integral digits. Zero means the
	// locale does not group digits.
	GroupSeparator rune
}

// Classic is the locale-independent locale: "true"/"false", '.' as the
// decimal point, no digit grouping. It is what every non-localized read uses.
func Classic() *Locale { return &classic }

var classic = Locale{
	Name:         "C",
	Truename:     "true",
	Falsename:    "false",
	DecimalPoint: '.',
}

// localeDoc is the YAML shape of a locale definition. Separators are strings
// in YAML and validated down to single runes.
type localeDoc struct {
	Name           string `yaml:"name"`
	Truename       string `yaml:"truename"`
	Falsename      string `yaml:"falsename"`
	DecimalPoint   string `yaml:"decimal_point"`
	GroupSeparator string `yaml:"group_separator"`
}

// FromYAML builds a Locale from a YAML document. Missing fields inherit the
// classic locale's values.
func FromYAML(data []byte) (*Locale, error) {
	var doc localeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding locale: %w", err)
	}
	return fromDoc(doc)
}

func fromDoc(doc localeDoc) (*Locale, error) {
	loc := classic
	loc.GroupSeparator = 0

	if doc.Name != "" {
		loc.Name = doc.Name
	}
	if doc.Truename != "" {
		loc.Truename = doc.Truename
	}
	if doc.Falsename != "" {
		loc.Falsename = doc.Falsename
	}
	if doc.DecimalPoint != "" {
		r, err := singleRune("decimal_point", doc.DecimalPoint)
		if err != nil {
			return nil, err
		}
		loc.DecimalPoint = r
	}
	if doc.GroupSeparator != "" {
		r, err := singleRune("group_separator", doc.GroupSeparator)
		if err != nil {
			return nil, err
		}
		loc.GroupSeparator = r
	}
	if loc.Truename == loc.Falsename {
		return nil, fmt.Errorf("locale %q: truename and falsename must differ", loc.Name)
	}
	return &loc, nil
}

func singleRune(field, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("locale field %s must be a single character, got %q", field, s)
	}
	return r, nil
}

//go:embed locales.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtin     map[string]*Locale
	builtinErr  error
)

func loadBuiltin() {
	var docs []localeDoc
	if builtinErr = yaml.Unmarshal(builtinYAML, &docs); builtinErr != nil {
		return
	}
	builtin = make(map[string]*Locale, len(docs)+1)
	builtin[classic.Name] = &classic
	for _, doc := range docs {
		loc, err := fromDoc(doc)
		if err != nil {
			builtinErr = err
			return
		}
		builtin[loc.Name] = loc
	}
}

// Lookup returns the builtin locale with the given name. The classic locale
// is registered under "C".
func Lookup(name string) (*Locale, bool) {
	builtinOnce.Do(loadBuiltin)
	if builtinErr != nil {
		return nil, false
	}
	loc, ok := builtin[name]
	return loc, ok
}
