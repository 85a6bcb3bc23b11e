// Package fsname decides which characters may appear in a file name.
package fsname

import (
	"regexp"
	"strings"
)

// MaxLen is the common per-component byte limit of Unix and Windows
// filesystems.
const MaxLen = 255

// unsafeRegex matches path separators, characters reserved on Windows and
// C0/C1 control characters.
var unsafeRegex = regexp.MustCompile(`[/\\?<>:*|"\x00-\x1f\x7f-\x9f]`)

// Sanitize removes every character that is not filename-safe. A result made
// only of dots ("." and "..") is reserved and becomes empty. The result is
// truncated to MaxLen bytes without splitting a UTF-8 sequence.
func Sanitize(s string) string {
	safe := unsafeRegex.ReplaceAllString(s, "")
	if strings.Trim(safe, ".") == "" {
		return ""
	}
	if len(safe) > MaxLen {
		safe = truncate(safe, MaxLen)
	}
	return safe
}

// IsSafe reports whether r survives Sanitize on its own.
func IsSafe(r rune) bool {
	s := string(r)
	return Sanitize(s) == s
}

// Unsafe returns the characters of s that are not filename-safe, in order of
// first appearance and without repeats.
func Unsafe(s string) []rune {
	var out []rune
	seen := make(map[rune]bool)
	for _, r := range s {
		if !IsSafe(r) && !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// truncate cuts s to at most n bytes at a rune boundary.
func truncate(s string, n int) string {
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	return s[:cut]
}
