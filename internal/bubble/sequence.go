// Package bubble holds the in-place shuffle and exchange sort used by the
// bubblesort driver.
package bubble

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize    = errors.New("invalid size")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownShuffle = errors.New("unknown shuffle mode")
)

// NewSequence returns the identity sequence [0, n). A max of zero or less
// disables the upper bound.
func NewSequence(n, max int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidSize, n)
	}
	if max > 0 && n > max {
		return nil, fmt.Errorf("%w: %d exceeds the limit of %d", ErrInvalidSize, n, max)
	}
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return a, nil
}

func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}
