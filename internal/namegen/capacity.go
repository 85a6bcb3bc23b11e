package namegen

import (
	"math"
	"math/bits"
)

// NamingSpace returns alphabetLen^length. When the true value does not fit in
// a uint64, it returns math.MaxUint64 and ok == false instead of wrapping.
func NamingSpace(alphabetLen, length int) (size uint64, ok bool) {
	if alphabetLen < 0 || length < 0 {
		return 0, true
	}
	base := uint64(alphabetLen)
	if length == 0 {
		return 1, true
	}
	if base <= 1 {
		return base, true
	}

	size = 1
	for range length {
		hi, lo := bits.Mul64(size, base)
		if hi != 0 {
			return math.MaxUint64, false
		}
		size = lo
	}
	return size, true
}

// CheckCapacity refuses requests that cannot succeed. The naming space check
// runs first, then the file ceiling. Neither is skippable.
func CheckCapacity(fileCount int, space uint64, ok bool, limits Limits) error {
	if ok && uint64(fileCount) > space {
		return &InsufficientNamingSpaceError{Needs: fileCount, Space: space}
	}
	if fileCount > limits.MaxFiles {
		return &TooManyFilesError{Count: fileCount, Limit: limits.MaxFiles}
	}
	return nil
}
