// Package wrap maps out-of-range integer indexes back into a bounded interval
// or sequence using floor-modulo arithmetic.
package wrap

import (
	"math/rand/v2"

	domerrors "github.com/alexisbeaulieu97/domkit/pkg/errors"
)

// Bounds is an inclusive integer range.
type Bounds struct {
	Min int
	Max int
}

// Validate rejects inverted ranges and ranges whose width does not fit in an int.
func (b Bounds) Validate() error {
	if b.Max < b.Min {
		return domerrors.NewInvalidArgumentError("wrap.Bounds", "max %d is less than min %d", b.Max, b.Min)
	}
	if d := b.Max - b.Min; d < 0 || d == maxInt {
		return domerrors.NewInvalidArgumentError("wrap.Bounds", "range [%d, %d] is too wide", b.Min, b.Max)
	}
	return nil
}

// Width returns the number of integers in the range. Only meaningful after Validate.
func (b Bounds) Width() int {
	return b.Max - b.Min + 1
}

// Contains reports whether v lies within the range.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Wrap maps value into the range. Callers must have validated b.
func (b Bounds) Wrap(value int) int {
	w := b.Width()
	return b.Min + floorMod(floorMod(value, w)-floorMod(b.Min, w), w)
}

const maxInt = int(^uint(0) >> 1)

// floorMod returns a mod n in [0, n) for n > 0 regardless of the sign of a.
// Go's % truncates toward zero, so a negative remainder is shifted up by n.
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Range wraps value into the inclusive range [min, max].
//
//	Range(1, 3, 0) // 3
//	Range(1, 3, 4) // 1
func Range(min, max, value int) (int, error) {
	b := Bounds{Min: min, Max: max}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return b.Wrap(value), nil
}

// NewRangeWrapper returns a function wrapping values into [min, max]. The bounds
// are checked once here so the returned function cannot fail.
func NewRangeWrapper(min, max int) (func(int) int, error) {
	b := Bounds{Min: min, Max: max}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.Wrap, nil
}

// Index returns the position index wraps to in a sequence of the given length.
func Index(length, index int) (int, error) {
	if length <= 0 {
		return 0, domerrors.NewInvalidArgumentError("wrap.Index", "sequence is empty")
	}
	return floorMod(index, length), nil
}

// Slice returns the element of items at index, wrapping around either end.
// An empty slice is rejected rather than yielding a zero value.
func Slice[T any](items []T, index int) (T, error) {
	i, err := Index(len(items), index)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[i], nil
}

// RandomSource produces uniform integers in [0, n).
type RandomSource interface {
	IntN(n int) int
}

// Random returns a uniformly distributed integer in the inclusive range
// [min, max]. A nil src uses the package-level generator of math/rand/v2.
func Random(src RandomSource, min, max int) (int, error) {
	b := Bounds{Min: min, Max: max}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if src == nil {
		return min + rand.IntN(b.Width()), nil
	}
	return min + src.IntN(b.Width()), nil
}
