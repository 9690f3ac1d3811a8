// scaler.go defines the Scaler interface and the Plan it executes.

// Package scaler applies sizes computed by framesize to actual images.
package scaler

import (
	"context"
	"fmt"
	"image"

	"github.com/xaionaro-go/framesize"
)

type Scaler interface {
	fmt.Stringer
	Close(context.Context) error
	ScaleImage(ctx context.Context, src image.Image) (image.Image, error)
	SourceResolution() framesize.Size
	DestinationResolution() framesize.Size
}

// Plan describes how an image of size Source becomes an image of size
// Destination: it is first resampled to Resize and then center-cropped
// and/or center-padded to Destination.
type Plan struct {
	Source      framesize.Size
	Resize      framesize.Size
	Destination framesize.Size
}

// NewPlan scales "source" to "target" according to the policies.
// Fill crops the overflow to the target, Fit pads (letterboxes) to it.
func NewPlan(
	source framesize.Size,
	target framesize.Size,
	fitPolicy framesize.FitPolicy,
	scaleDirection framesize.ScaleDirection,
) (Plan, error) {
	b := source.ToBuilder()
	if err := b.Scale(target, fitPolicy, scaleDirection); err != nil {
		return Plan{}, fmt.Errorf("unable to scale %s to %s: %w", source, target, err)
	}
	resize := b.Build()
	switch fitPolicy {
	case framesize.FitPolicyFill:
		b.CropTo(target)
	case framesize.FitPolicyFit:
		b.PadTo(target)
	}
	return Plan{
		Source:      source,
		Resize:      resize,
		Destination: b.Build(),
	}, nil
}

func (p Plan) Validate() error {
	for _, s := range []framesize.Size{p.Source, p.Resize, p.Destination} {
		if !s.AreBothDimensionsDefined() || s.Area() == 0 {
			return framesize.ErrInvalidArgument{Reason: fmt.Sprintf("size %s is not a valid image size", s)}
		}
	}
	return nil
}

func (p Plan) String() string {
	return fmt.Sprintf("%s -> %s -> %s", p.Source, p.Resize, p.Destination)
}
