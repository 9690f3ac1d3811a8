// job.go defines Job: one size computation described declaratively.

package config

import (
	"fmt"

	"github.com/xaionaro-go/framesize"
	"github.com/xaionaro-go/framesize/types"
)

type Job struct {
	Name string `yaml:"name" toml:"name"`

	// Source is the size to start from. An undefined dimension is derived
	// from AspectRatio.
	Source      framesize.Size  `yaml:"source" toml:"source"`
	AspectRatio *types.Rational `yaml:"aspect_ratio,omitempty" toml:"aspect_ratio,omitempty"`

	// Target is the size to scale to. An undefined dimension is derived
	// from the aspect ratio of the (resolved) source.
	Target         framesize.Size           `yaml:"target" toml:"target"`
	FitPolicy      framesize.FitPolicy      `yaml:"fit_policy" toml:"fit_policy"`
	ScaleDirection framesize.ScaleDirection `yaml:"scale_direction" toml:"scale_direction"`

	Crop             bool `yaml:"crop,omitempty" toml:"crop,omitempty"`
	Pad              bool `yaml:"pad,omitempty" toml:"pad,omitempty"`
	RoundWidthToEven bool `yaml:"round_width_to_even,omitempty" toml:"round_width_to_even,omitempty"`
}

func (j Job) String() string {
	return fmt.Sprintf("%s: %s -> %s (%s, %s)", j.Name, j.Source, j.Target, j.FitPolicy, j.ScaleDirection)
}

// Run executes the job: resolve, scale, then optionally crop, pad and
// round the width to an even value, in this order.
func (j Job) Run() (framesize.Size, error) {
	b := j.Source.ToBuilder()
	if j.AspectRatio != nil && !j.Source.AreBothDimensionsDefined() {
		ratio, err := framesize.NewSizeFromInts(j.AspectRatio.Num, j.AspectRatio.Den)
		if err != nil {
			return framesize.Size{}, fmt.Errorf("invalid aspect ratio %s: %w", j.AspectRatio, err)
		}
		if err := b.CalculateUndefinedDimensions(ratio); err != nil {
			return framesize.Size{}, fmt.Errorf("unable to resolve the source %s: %w", j.Source, err)
		}
	}

	target := j.Target.ToBuilder()
	if err := target.CalculateUndefinedDimensions(b.Build()); err != nil {
		return framesize.Size{}, fmt.Errorf("unable to resolve the target %s: %w", j.Target, err)
	}

	if err := b.Scale(target.Build(), j.FitPolicy, j.ScaleDirection); err != nil {
		return framesize.Size{}, fmt.Errorf("unable to scale: %w", err)
	}
	if j.Crop {
		b.CropTo(target.Build())
	}
	if j.Pad {
		b.PadTo(target.Build())
	}
	if j.RoundWidthToEven {
		b.RoundWidthUpToEvenAndMaintainAspectRatio()
	}
	return b.Build(), nil
}
