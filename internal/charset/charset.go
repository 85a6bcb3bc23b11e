// Package charset defines the alphabets random names are drawn from.
//
// Built-in sets cover letters, digits, alphanumerics, base16 and the
// filename-safe base64url alphabet. Custom sets are validated for
// filename-safety and uniqueness before use.
package charset

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Selection names a family of character sets.
type Selection string

const (
	Letters      Selection = "letters"
	Numbers      Selection = "numbers"
	AlphaNumeric Selection = "alpha_numeric"
	Base16       Selection = "base16"
	Base64       Selection = "base64"
	Custom       Selection = "custom"
)

// Selections lists every selection in display order.
var Selections = []Selection{Letters, Numbers, AlphaNumeric, Base16, Base64, Custom}

func (s Selection) String() string { return string(s) }

// Set implements pflag.Value.
func (s *Selection) Set(v string) error {
	for _, sel := range Selections {
		if string(sel) == v {
			*s = sel
			return nil
		}
	}
	return fmt.Errorf("unknown character set %q (want one of %s)", v, joinSelections())
}

// Type implements pflag.Value.
func (s *Selection) Type() string { return "set" }

// Casing picks upper, lower or mixed case where a selection supports it.
// The zero value means "not specified".
type Casing string

const (
	Upper Casing = "upper"
	Lower Casing = "lower"
	Mixed Casing = "mixed"
)

func (c Casing) String() string { return string(c) }

// Set implements pflag.Value.
func (c *Casing) Set(v string) error {
	switch Casing(v) {
	case Upper, Lower, Mixed:
		*c = Casing(v)
		return nil
	}
	return fmt.Errorf("unknown case %q (want upper, lower or mixed)", v)
}

// Type implements pflag.Value.
func (c *Casing) Type() string { return "case" }

const (
	lettersLower = "abcdefghijklmnopqrstuvwxyz"
	digits       = "0123456789"
	hexLower     = "0123456789abcdef"
	base64URL    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var upper = cases.Upper(language.Und)

var (
	lettersUpper = upper.String(lettersLower)
	hexUpper     = upper.String(hexLower)
)

// Alphabet is an ordered sequence of unique symbols. It is immutable once
// built.
type Alphabet struct {
	desc    string
	symbols []rune
}

func newAlphabet(desc, symbols string) Alphabet {
	return Alphabet{desc: desc, symbols: []rune(symbols)}
}

// Len returns the number of symbols.
func (a Alphabet) Len() int { return len(a.symbols) }

// At returns the symbol at index i.
func (a Alphabet) At(i int) rune { return a.symbols[i] }

// String describes the set, e.g. "[a-z0-9]" or `Custom("abc")`.
func (a Alphabet) String() string { return a.desc }

// Symbols returns a copy of the symbols as a string.
func (a Alphabet) Symbols() string { return string(a.symbols) }

// Resolve builds the alphabet for a selection, optional custom characters and
// optional casing. It fails for combinations the support table rejects.
func Resolve(sel Selection, custom string, casing Casing) (Alphabet, error) {
	if sel == "" {
		sel = Base16
	}
	if sel == Custom {
		if custom == "" {
			return Alphabet{}, fmt.Errorf("--custom-chars is required when --char-set=custom")
		}
		if casing != "" {
			return Alphabet{}, incompatible(sel, casing)
		}
		return ParseCustom(custom)
	}
	if custom != "" {
		return Alphabet{}, fmt.Errorf("--custom-chars cannot be used unless --char-set=custom")
	}

	switch sel {
	case Letters:
		switch casing {
		case "", Lower:
			return newAlphabet("[a-z]", lettersLower), nil
		case Upper:
			return newAlphabet("[A-Z]", lettersUpper), nil
		case Mixed:
			return newAlphabet("[a-zA-Z]", lettersLower+lettersUpper), nil
		}
	case Numbers:
		if casing == "" {
			return newAlphabet("[0-9]", digits), nil
		}
	case AlphaNumeric:
		switch casing {
		case "", Lower:
			return newAlphabet("[a-z0-9]", lettersLower+digits), nil
		case Upper:
			return newAlphabet("[A-Z0-9]", lettersUpper+digits), nil
		case Mixed:
			return newAlphabet("[a-zA-Z0-9]", lettersLower+lettersUpper+digits), nil
		}
	case Base16:
		switch casing {
		case "", Lower:
			return newAlphabet("[0-9a-f]", hexLower), nil
		case Upper:
			return newAlphabet("[0-9A-F]", hexUpper), nil
		}
	case Base64:
		if casing == "" {
			return newAlphabet("[A-Za-z0-9-_]", base64URL), nil
		}
	default:
		return Alphabet{}, fmt.Errorf("unknown character set %q", sel)
	}
	return Alphabet{}, incompatible(sel, casing)
}

func incompatible(sel Selection, casing Casing) error {
	return fmt.Errorf("the character set %s is incompatible with the case %s", sel, casing)
}

// Description summarises a selection for listings.
type Description struct {
	Selection Selection
	Casings   []Casing
	Sets      []Alphabet
}

// List describes every built-in selection and the casings it accepts.
func List() []Description {
	var out []Description
	for _, sel := range Selections {
		if sel == Custom {
			continue
		}
		d := Description{Selection: sel}
		for _, c := range []Casing{Lower, Upper, Mixed} {
			a, err := Resolve(sel, "", c)
			if err != nil {
				continue
			}
			d.Casings = append(d.Casings, c)
			d.Sets = append(d.Sets, a)
		}
		if len(d.Sets) == 0 {
			a, _ := Resolve(sel, "", "")
			d.Sets = append(d.Sets, a)
		}
		out = append(out, d)
	}
	return out
}

func joinSelections() string {
	names := make([]string, len(Selections))
	for i, s := range Selections {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
