// builder.go implements Builder: the mutable Size carrying all the dimension-resolution algorithms.

package framesize

import (
	"fmt"
)

// Builder is a mutable Size.
//
// Infallible operations return the builder itself to allow chaining;
// fallible operations return an error and leave the builder intact
// if they fail.
//
// A Builder must not be used concurrently; use Clone to hand a copy over.
type Builder struct {
	size Size
}

// NewBuilder returns a Builder with both dimensions defined.
func NewBuilder(width, height int) (*Builder, error) {
	s, err := NewSizeFromInts(width, height)
	if err != nil {
		return nil, err
	}
	return s.ToBuilder(), nil
}

func (b *Builder) Clone() *Builder {
	return &Builder{size: b.size}
}

func (b *Builder) Build() Size {
	return b.size
}

func (b *Builder) Width() Dimension {
	return b.size.width
}

func (b *Builder) Height() Dimension {
	return b.size.height
}

func (b *Builder) String() string {
	return b.size.String()
}

func (b *Builder) SetSize(s Size) *Builder {
	b.size = s
	return b
}

func (b *Builder) SetWidth(width int) error {
	w, err := DimensionFromInt(width)
	if err != nil {
		return fmt.Errorf("unable to set width: %w", err)
	}
	b.size.width = w
	return nil
}

func (b *Builder) SetHeight(height int) error {
	h, err := DimensionFromInt(height)
	if err != nil {
		return fmt.Errorf("unable to set height: %w", err)
	}
	b.size.height = h
	return nil
}

func (b *Builder) SetWidthDimension(width Dimension) *Builder {
	b.size.width = width
	return b
}

func (b *Builder) SetHeightDimension(height Dimension) *Builder {
	b.size.height = height
	return b
}

func (b *Builder) UnsetWidth() *Builder {
	b.size.width = Undefined
	return b
}

func (b *Builder) UnsetHeight() *Builder {
	b.size.height = Undefined
	return b
}

// Max raises each dimension to the one of "other" if it is larger.
func (b *Builder) Max(other Size) *Builder {
	b.size.width = maxDimension(b.size.width, other.width)
	b.size.height = maxDimension(b.size.height, other.height)
	return b
}

// Min lowers each dimension to the one of "other" if it is smaller.
func (b *Builder) Min(other Size) *Builder {
	b.size.width = minDimension(b.size.width, other.width)
	b.size.height = minDimension(b.size.height, other.height)
	return b
}

// Invert swaps the width and the height, which is what a 90° rotation does.
func (b *Builder) Invert() *Builder {
	b.size.width, b.size.height = b.size.height, b.size.width
	return b
}

// RoundWidthUpToEvenAndMaintainAspectRatio makes an odd width even
// (many video encoders reject odd widths) and, if the height is defined,
// rounds the height to keep the aspect ratio as close as possible.
func (b *Builder) RoundWidthUpToEvenAndMaintainAspectRatio() *Builder {
	oldWidth, ok := b.size.width.Get()
	if !ok || oldWidth%2 == 0 {
		return b
	}
	newWidth := oldWidth + 1
	if newWidth == 0 {
		// wrapped around; the largest even width is one step down
		newWidth = oldWidth - 1
	}
	b.size.width = Defined(newWidth)
	if oldHeight, ok := b.size.height.Get(); ok {
		b.size.height = Defined(mulDivRound(newWidth, oldHeight, oldWidth))
	}
	return b
}

// CalculateUndefinedDimensions derives the undefined dimension from the
// defined one using the aspect ratio of "source". Integer division
// truncates. Nothing happens if both dimensions are already defined.
func (b *Builder) CalculateUndefinedDimensions(source Size) error {
	switch {
	case b.size.width.IsDefined() && b.size.height.IsDefined():
		return nil
	case !b.size.width.IsDefined() && !b.size.height.IsDefined():
		return ErrInvalidArgument{Reason: "both dimensions are undefined, nothing to derive from"}
	case !b.size.width.IsDefined():
		if !source.width.IsDefined() || !source.height.isDivisor() {
			return ErrInvalidArgument{Reason: fmt.Sprintf("source size %s cannot provide an aspect ratio", source)}
		}
		width, ok := mulDiv(source.width.value, b.size.height.value, source.height.value)
		if !ok {
			return ErrInvalidArgument{Reason: fmt.Sprintf("the width derived from %s and %s overflows", source, b.size)}
		}
		b.size.width = Defined(width)
	default:
		if !source.height.IsDefined() || !source.width.isDivisor() {
			return ErrInvalidArgument{Reason: fmt.Sprintf("source size %s cannot provide an aspect ratio", source)}
		}
		height, ok := mulDiv(source.height.value, b.size.width.value, source.width.value)
		if !ok {
			return ErrInvalidArgument{Reason: fmt.Sprintf("the height derived from %s and %s overflows", source, b.size)}
		}
		b.size.height = Defined(height)
	}
	return nil
}

// Scale scales the size to the target preserving the aspect ratio,
// see ScaleToFill and ScaleToFit.
func (b *Builder) Scale(
	target Size,
	fitPolicy FitPolicy,
	scaleDirection ScaleDirection,
) error {
	switch fitPolicy {
	case FitPolicyFill:
		return b.ScaleToFill(target, scaleDirection)
	case FitPolicyFit:
		return b.ScaleToFit(target, scaleDirection)
	default:
		return ErrUnknownFitPolicy{FitPolicy: fitPolicy}
	}
}

// ScaleToFill scales the size so that it covers the target in both
// dimensions; one of them may exceed the target.
func (b *Builder) ScaleToFill(target Size, scaleDirection ScaleDirection) error {
	return b.scale(target, scaleDirection, true)
}

// ScaleToFit scales the size so that it is contained within the target
// in both dimensions; one of them may be less than the target.
func (b *Builder) ScaleToFit(target Size, scaleDirection ScaleDirection) error {
	return b.scale(target, scaleDirection, false)
}

func (b *Builder) scale(
	target Size,
	scaleDirection ScaleDirection,
	isFill bool,
) error {
	if !target.width.isDivisor() || !target.height.isDivisor() {
		return ErrInvalidArgument{Reason: fmt.Sprintf("target size %s has an undefined or zero dimension", target)}
	}
	if !scaleDirection.IsValid() {
		return ErrUnknownScaleDirection{ScaleDirection: scaleDirection}
	}
	if !b.size.width.isDivisor() || !b.size.height.isDivisor() {
		return ErrInvalidArgument{Reason: fmt.Sprintf("size %s cannot be scaled: it has no aspect ratio", b.size)}
	}

	width, height := b.size.width.value, b.size.height.value
	aspectRatioGreater := target.AspectRatio() > b.size.AspectRatio()
	if aspectRatioGreater != isFill {
		targetHeight := target.height.value
		if !scaleDirection.Permits(height, targetHeight) {
			return nil
		}
		newWidth, ok := mulDiv(width, targetHeight, height)
		if !ok {
			return ErrInvalidArgument{Reason: fmt.Sprintf("scaling %s to the height %d overflows the width", b.size, targetHeight)}
		}
		b.size.width = Defined(newWidth)
		b.size.height = Defined(targetHeight)
	} else {
		targetWidth := target.width.value
		if !scaleDirection.Permits(width, targetWidth) {
			return nil
		}
		newHeight, ok := mulDiv(height, targetWidth, width)
		if !ok {
			return ErrInvalidArgument{Reason: fmt.Sprintf("scaling %s to the width %d overflows the height", b.size, targetWidth)}
		}
		b.size.height = Defined(newHeight)
		b.size.width = Defined(targetWidth)
	}
	return nil
}

// CropTo clamps each dimension down to the target, without preserving
// the aspect ratio. Undefined target dimensions do not constrain.
func (b *Builder) CropTo(target Size) *Builder {
	if w, ok := target.width.Get(); ok && b.size.width.Value() > w {
		b.size.width = Defined(w)
	}
	if h, ok := target.height.Get(); ok && b.size.height.Value() > h {
		b.size.height = Defined(h)
	}
	return b
}

// PadTo raises each dimension up to the target, without preserving
// the aspect ratio.
func (b *Builder) PadTo(target Size) *Builder {
	if w, ok := target.width.Get(); ok && (!b.size.width.IsDefined() || b.size.width.value < w) {
		b.size.width = Defined(w)
	}
	if h, ok := target.height.Get(); ok && (!b.size.height.IsDefined() || b.size.height.value < h) {
		b.size.height = Defined(h)
	}
	return b
}
