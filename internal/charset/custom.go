package charset

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"rngrename/internal/fsname"
)

// ErrEmptyCustom is returned for an empty custom character set.
var ErrEmptyCustom = errors.New("the custom character set is empty")

// IllegalCharsError lists custom characters that are not filename-safe.
type IllegalCharsError struct {
	Chars []rune
}

func (e *IllegalCharsError) Error() string {
	return "the custom character set contains illegal characters: " + quoteRunes(e.Chars)
}

// DuplicateCharsError lists custom characters that appear more than once.
type DuplicateCharsError struct {
	Chars []rune
}

func (e *DuplicateCharsError) Error() string {
	return "the custom character set contains duplicate characters: " + quoteRunes(e.Chars)
}

// ParseCustom validates a user-supplied character set. Input is NFC
// normalised first so that visually identical characters compare equal.
func ParseCustom(s string) (Alphabet, error) {
	s = norm.NFC.String(s)
	if s == "" {
		return Alphabet{}, ErrEmptyCustom
	}

	if illegal := fsname.Unsafe(s); len(illegal) > 0 {
		return Alphabet{}, &IllegalCharsError{Chars: illegal}
	}

	counts := make(map[rune]int)
	var dups []rune
	for _, r := range s {
		counts[r]++
		if counts[r] == 2 {
			dups = append(dups, r)
		}
	}
	if len(dups) > 0 {
		return Alphabet{}, &DuplicateCharsError{Chars: dups}
	}

	return newAlphabet(fmt.Sprintf("Custom(%q)", s), s), nil
}

func quoteRunes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = fmt.Sprintf("%q", r)
	}
	return strings.Join(parts, ", ")
}
