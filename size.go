// size.go defines the immutable Size value.

// Package framesize resolves and scales 2D image/video frame dimensions.
//
// A Size is an immutable width/height pair where each dimension may be
// undefined; a Builder is its mutable counterpart which carries all the
// resolution algorithms (fit/fill scaling, crop, pad, aspect-ratio
// inference and even-width rounding).
package framesize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/xaionaro-go/framesize/types"
)

type Size struct {
	width  Dimension
	height Dimension
}

var _ pflag.Value = (*Size)(nil)

func NewSize(width, height Dimension) Size {
	return Size{width: width, height: height}
}

// NewSizeFromInts returns a Size with both dimensions defined.
func NewSizeFromInts(width, height int) (Size, error) {
	w, err := DimensionFromInt(width)
	if err != nil {
		return Size{}, fmt.Errorf("invalid width: %w", err)
	}
	h, err := DimensionFromInt(height)
	if err != nil {
		return Size{}, fmt.Errorf("invalid height: %w", err)
	}
	return NewSize(w, h), nil
}

func (s Size) Width() Dimension {
	return s.width
}

func (s Size) Height() Dimension {
	return s.height
}

func (s Size) AreBothDimensionsDefined() bool {
	return s.width.IsDefined() && s.height.IsDefined()
}

func (s Size) IsAtLeastOneDimensionDefined() bool {
	return s.width.IsDefined() || s.height.IsDefined()
}

// AspectRatio returns width/height. Undefined dimensions read as zero,
// so the result is not finite unless the height is defined and non-zero.
func (s Size) AspectRatio() float64 {
	return float64(s.width.Value()) / float64(s.height.Value())
}

// AspectRatioRational returns the reduced width:height fraction.
func (s Size) AspectRatioRational() types.Rational {
	return types.Rational{
		Num: int(s.width.Value()),
		Den: int(s.height.Value()),
	}.Reduce()
}

func (s Size) Area() uint64 {
	return uint64(s.width.Value()) * uint64(s.height.Value())
}

func (s Size) ToBuilder() *Builder {
	return &Builder{size: s}
}

func (s Size) String() string {
	return fmt.Sprintf("%sx%s", s.width, s.height)
}

func ParseSize(str string) (Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(str)), "x")
	if !ok {
		return Size{}, fmt.Errorf("unable to parse size '%s': expected format WIDTHxHEIGHT", str)
	}
	width, err := parseDimension(w)
	if err != nil {
		return Size{}, fmt.Errorf("unable to parse the width of size '%s': %w", str, err)
	}
	height, err := parseDimension(h)
	if err != nil {
		return Size{}, fmt.Errorf("unable to parse the height of size '%s': %w", str, err)
	}
	return NewSize(width, height), nil
}

func (s *Size) Set(str string) error {
	v, err := ParseSize(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Size) Type() string {
	return "size"
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Size) UnmarshalText(b []byte) error {
	return s.Set(string(b))
}

func (s Size) MarshalYAML() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Size) UnmarshalYAML(b []byte) error {
	return s.Set(strings.Trim(string(b), " \"'\n\r\t"))
}
