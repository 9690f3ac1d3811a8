// Package recording derives encoder-safe recording sizes from camera sensor sizes.
package recording

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/xaionaro-go/framesize"
	"github.com/xaionaro-go/framesize/logger"
)

type Config struct {
	// Sensor is the size of the frames as they come out of the camera.
	Sensor framesize.Size

	// RotationDegrees is the clockwise rotation applied to the frames
	// before recording; must be a multiple of 90.
	RotationDegrees int

	// Bound is the size the recording should match. An undefined
	// dimension is derived from the other one and the sensor aspect ratio.
	Bound framesize.Size

	FitPolicy      framesize.FitPolicy
	ScaleDirection framesize.ScaleDirection
}

// DefaultConfig records at most 1920x1080 without ever upscaling the sensor.
// The recording never exceeds the bound; see Size.
func DefaultConfig(sensor framesize.Size) Config {
	return Config{
		Sensor:         sensor,
		Bound:          framesize.NewSize(framesize.Defined(1920), framesize.Defined(1080)),
		FitPolicy:      framesize.FitPolicyFit,
		ScaleDirection: framesize.ScaleDirectionDownscaleOnly,
	}
}

// IsRotatedSideways reports whether the rotation swaps width and height.
func (cfg Config) IsRotatedSideways() (bool, error) {
	if cfg.RotationDegrees%90 != 0 {
		return false, framesize.ErrInvalidArgument{Reason: fmt.Sprintf("rotation %d° is not a multiple of 90°", cfg.RotationDegrees)}
	}
	return cfg.RotationDegrees%180 != 0, nil
}

// Size returns the size to record with: the (rotated) sensor size scaled
// to the bound, with an even width, cropped to the bound.
//
// An odd bound width is rounded down first, so the even width never
// exceeds the bound. Rounding the width up may add a pixel of height;
// that pixel is cropped away if it does not fit.
func Size(
	ctx context.Context,
	cfg Config,
) (_ret framesize.Size, _err error) {
	logger.Tracef(ctx, "Size")
	defer func() { logger.Tracef(ctx, "/Size: %v %v", _ret, _err) }()
	logger.Debugf(ctx, "config: %s", spew.Sdump(cfg))

	if !cfg.Sensor.AreBothDimensionsDefined() {
		return framesize.Size{}, framesize.ErrInvalidArgument{Reason: fmt.Sprintf("sensor size %s is not fully defined", cfg.Sensor)}
	}
	sideways, err := cfg.IsRotatedSideways()
	if err != nil {
		return framesize.Size{}, err
	}

	b := cfg.Sensor.ToBuilder()
	if sideways {
		b.Invert()
	}
	oriented := b.Build()

	bound := cfg.Bound.ToBuilder()
	if err := bound.CalculateUndefinedDimensions(oriented); err != nil {
		return framesize.Size{}, fmt.Errorf("unable to resolve the bound %s: %w", cfg.Bound, err)
	}
	if w := bound.Width().Value(); w%2 != 0 {
		bound.SetWidthDimension(framesize.Defined(w - 1))
	}

	if err := b.Scale(bound.Build(), cfg.FitPolicy, cfg.ScaleDirection); err != nil {
		return framesize.Size{}, fmt.Errorf("unable to scale %s to %s: %w", oriented, bound.Build(), err)
	}
	b.RoundWidthUpToEvenAndMaintainAspectRatio()
	b.CropTo(bound.Build())

	result := b.Build()
	logger.Debugf(ctx, "recording size for sensor %s rotated by %d°: %s", cfg.Sensor, cfg.RotationDegrees, result)
	return result, nil
}
