package namegen

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is wrapped by every error reporting that a request can
	// never be satisfied as asked.
	ErrInfeasible = errors.New("name generation is infeasible")

	// ErrEmptyAlphabet is returned when the alphabet has no symbols.
	ErrEmptyAlphabet = errors.New("alphabet has no symbols")
)

// InsufficientNamingSpaceError reports more files than distinct names.
type InsufficientNamingSpaceError struct {
	Needs int
	Space uint64
}

func (e *InsufficientNamingSpaceError) Error() string {
	return fmt.Sprintf(
		"this combination of character set and length cannot uniquely cover every file: there are %d files but only %d unique names available",
		e.Needs, e.Space)
}

func (e *InsufficientNamingSpaceError) Unwrap() error { return ErrInfeasible }

// TooManyFilesError reports a request above the file ceiling.
type TooManyFilesError struct {
	Count int
	Limit int
}

func (e *TooManyFilesError) Error() string {
	return fmt.Sprintf("cannot process %d files at once; the limit is %d", e.Count, e.Limit)
}

func (e *TooManyFilesError) Unwrap() error { return ErrInfeasible }

// TooManyPermutationsError reports a naming space too large to enumerate.
type TooManyPermutationsError struct {
	Alphabet string
	Length   int
	Limit    uint64
}

func (e *TooManyPermutationsError) Error() string {
	return fmt.Sprintf(
		"cannot enumerate all permutations with the character set %s and length %d (limit %d)",
		e.Alphabet, e.Length, e.Limit)
}

func (e *TooManyPermutationsError) Unwrap() error { return ErrInfeasible }
