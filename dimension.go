// dimension.go defines the optional Dimension type and the integer helpers built on it.

package framesize

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Dimension is a width or a height which may be not measured yet.
//
// The zero value is Undefined. A defined zero is a legitimate value
// and is distinct from Undefined.
type Dimension struct {
	value     uint32
	isDefined bool
}

// Undefined is a dimension that has not been measured/assigned.
var Undefined = Dimension{}

func Defined(v uint32) Dimension {
	return Dimension{value: v, isDefined: true}
}

// DimensionFromInt converts an arbitrary integer into a defined Dimension,
// rejecting values that do not fit into a dimension.
func DimensionFromInt[T constraints.Integer](v T) (Dimension, error) {
	if v < 0 {
		return Undefined, ErrInvalidArgument{Reason: fmt.Sprintf("negative dimension %d", v)}
	}
	if uint64(v) > math.MaxUint32 {
		return Undefined, ErrInvalidArgument{Reason: fmt.Sprintf("dimension %d is too large", v)}
	}
	return Defined(uint32(v)), nil
}

func (d Dimension) IsDefined() bool {
	return d.isDefined
}

// Get returns the value and whether it is defined.
func (d Dimension) Get() (uint32, bool) {
	return d.value, d.isDefined
}

// Value returns the value of the dimension, or 0 if it is undefined.
func (d Dimension) Value() uint32 {
	return d.value
}

// isDivisor reports whether it is safe to divide by the dimension.
func (d Dimension) isDivisor() bool {
	return d.isDefined && d.value != 0
}

func (d Dimension) String() string {
	if !d.isDefined {
		return "?"
	}
	return strconv.FormatUint(uint64(d.value), 10)
}

func parseDimension(s string) (Dimension, error) {
	switch s {
	case "", "?", "_":
		return Undefined, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Undefined, fmt.Errorf("unable to parse dimension %q: %w", s, err)
	}
	return DimensionFromInt(v)
}

// maxDimension and minDimension treat Undefined as 0.
func maxDimension(a, b Dimension) Dimension {
	if !a.isDefined && !b.isDefined {
		return Undefined
	}
	return Defined(max(a.value, b.value))
}

func minDimension(a, b Dimension) Dimension {
	if !a.isDefined || !b.isDefined {
		return Undefined
	}
	return Defined(min(a.value, b.value))
}

// mulDiv computes a*b/c in 64 bits, truncating; "ok" is false if the
// result does not fit into T.
func mulDiv[T constraints.Unsigned](a, b, c T) (_ret T, ok bool) {
	r := uint64(a) * uint64(b) / uint64(c)
	if r > uint64(^T(0)) {
		return 0, false
	}
	return T(r), true
}

// mulDivRound computes a*b/c in 64 bits rounding to the nearest,
// saturated to the range of T.
func mulDivRound[T constraints.Unsigned](a, b, c T) T {
	r := (uint64(a)*uint64(b) + uint64(c)/2) / uint64(c)
	return saturate[T](r)
}

func saturate[T constraints.Unsigned](v uint64) T {
	limit := uint64(^T(0))
	if v > limit {
		return T(limit)
	}
	return T(v)
}
