package scaler

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	"github.com/xaionaro-go/framesize"
	"github.com/xaionaro-go/framesize/internal"
	"github.com/xaionaro-go/framesize/logger"
	"github.com/xaionaro-go/xsync"
	"go.uber.org/atomic"
)

type Option interface {
	apply(*Software)
}

// OptionResampleFilter selects the filter used by resampling,
// transform.Linear is the default.
type OptionResampleFilter struct {
	transform.ResampleFilter
}

func (opt OptionResampleFilter) apply(s *Software) {
	s.resampleFilter = opt.ResampleFilter
}

// OptionPadColor selects the color of the padding, black is the default.
type OptionPadColor struct {
	color.Color
}

func (opt OptionPadColor) apply(s *Software) {
	s.padColor = opt.Color
}

type Software struct {
	plan           Plan
	resampleFilter transform.ResampleFilter
	padColor       color.Color

	locker       xsync.Mutex
	isClosed     atomic.Bool
	imagesScaled atomic.Uint64
}

var _ Scaler = (*Software)(nil)

func NewSoftware(
	ctx context.Context,
	plan Plan,
	opts ...Option,
) (*Software, error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scaling plan %s: %w", plan, err)
	}
	s := &Software{
		plan:           plan,
		resampleFilter: transform.Linear,
		padColor:       color.Black,
	}
	for _, opt := range opts {
		opt.apply(s)
	}
	logger.Debugf(ctx, "created %s", s)
	return s, nil
}

func (s *Software) String() string {
	return fmt.Sprintf("SoftwareScaler(%s)", s.plan)
}

func (s *Software) Close(ctx context.Context) error {
	logger.Tracef(ctx, "Close")
	defer logger.Tracef(ctx, "/Close")
	s.locker.Do(ctx, func() {
		s.isClosed.Store(true)
	})
	return nil
}

func (s *Software) IsClosed() bool {
	return s.isClosed.Load()
}

// ImagesScaled returns how many images were successfully scaled.
func (s *Software) ImagesScaled() uint64 {
	return s.imagesScaled.Load()
}

func (s *Software) ScaleImage(
	ctx context.Context,
	src image.Image,
) (_ret image.Image, _err error) {
	logger.Tracef(ctx, "ScaleImage")
	defer func() { logger.Tracef(ctx, "/ScaleImage: %v", _err) }()
	return xsync.DoA2R2(ctx, &s.locker, s.scaleImage, ctx, src)
}

func (s *Software) scaleImage(
	ctx context.Context,
	src image.Image,
) (image.Image, error) {
	if s.isClosed.Load() {
		return nil, fmt.Errorf("scaler is closed")
	}
	srcSize, err := sizeOf(src.Bounds())
	if err != nil {
		return nil, err
	}
	if srcSize != s.plan.Source {
		return nil, fmt.Errorf("the image is %s, but the scaler expects %s", srcSize, s.plan.Source)
	}

	var img image.Image = src
	if s.plan.Resize != s.plan.Source {
		img = transform.Resize(
			src,
			int(s.plan.Resize.Width().Value()),
			int(s.plan.Resize.Height().Value()),
			s.resampleFilter,
		)
	}

	cropped := s.plan.Resize.ToBuilder().CropTo(s.plan.Destination).Build()
	if cropped != s.plan.Resize {
		img = transform.Crop(img, centered(img.Bounds(), cropped))
	}

	if cropped != s.plan.Destination {
		canvas := image.NewRGBA(image.Rect(
			0, 0,
			int(s.plan.Destination.Width().Value()),
			int(s.plan.Destination.Height().Value()),
		))
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(s.padColor), image.Point{}, draw.Src)
		draw.Draw(canvas, centered(canvas.Bounds(), cropped), img, img.Bounds().Min, draw.Src)
		img = canvas
	}

	outSize, err := sizeOf(img.Bounds())
	internal.Assert(ctx, err == nil && outSize == s.plan.Destination, outSize, s.plan.Destination)

	s.imagesScaled.Inc()
	logger.Tracef(ctx, "scaled an image %s -> %s", srcSize, s.plan.Destination)
	return img, nil
}

// centered returns a rectangle of the given size centered within "outer".
func centered(outer image.Rectangle, size framesize.Size) image.Rectangle {
	w, h := int(size.Width().Value()), int(size.Height().Value())
	topLeft := outer.Min.Add(image.Pt((outer.Dx()-w)/2, (outer.Dy()-h)/2))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(w, h))}
}

func sizeOf(r image.Rectangle) (framesize.Size, error) {
	return framesize.NewSizeFromInts(r.Dx(), r.Dy())
}

func (s *Software) SourceResolution() framesize.Size {
	return s.plan.Source
}

func (s *Software) DestinationResolution() framesize.Size {
	return s.plan.Destination
}

func (s *Software) Plan() Plan {
	return s.plan
}
