package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/framesize"
	"github.com/xaionaro-go/framesize/types"
)

const jobsYAML = `
jobs:
  - name: thumbnail
    source: "1920x1080"
    target: "800x800"
    fit_policy: fit
    scale_direction: any
    pad: true
  - source: "960x?"
    aspect_ratio: "16:9"
    target: "?x270"
    fit_policy: fill
    scale_direction: downscale-only
    round_width_to_even: true
`

const jobsTOML = `
[[jobs]]
name = "thumbnail"
source = "1920x1080"
target = "800x800"
fit_policy = "fill"
scale_direction = "any"
crop = true

[[jobs]]
name = "derived"
source = "?x1080"
aspect_ratio = "4:3"
target = "1000x?"
fit_policy = "fit"
scale_direction = "any"
`

func size(width, height uint32) framesize.Size {
	return framesize.NewSize(framesize.Defined(width), framesize.Defined(height))
}

func TestParseYAML(t *testing.T) {
	jobs, err := Parse([]byte(jobsYAML), FormatYAML)
	require.NoError(t, err)
	require.Len(t, jobs.Jobs, 2)

	job := jobs.Jobs[0]
	require.Equal(t, "thumbnail", job.Name)
	require.Equal(t, size(1920, 1080), job.Source)
	require.Equal(t, framesize.FitPolicyFit, job.FitPolicy)
	require.Equal(t, framesize.ScaleDirectionAny, job.ScaleDirection)
	require.True(t, job.Pad)

	result, err := job.Run()
	require.NoError(t, err)
	require.Equal(t, size(800, 800), result)

	job = jobs.Jobs[1]
	require.Equal(t, "job1", job.Name)
	require.Equal(t, &types.Rational{Num: 16, Den: 9}, job.AspectRatio)
	require.Equal(t, framesize.ScaleDirectionDownscaleOnly, job.ScaleDirection)

	result, err = job.Run()
	require.NoError(t, err)
	require.Equal(t, size(480, 270), result)
}

func TestParseTOML(t *testing.T) {
	jobs, err := Parse([]byte(jobsTOML), FormatTOML)
	require.NoError(t, err)
	require.Len(t, jobs.Jobs, 2)

	result, err := jobs.Jobs[0].Run()
	require.NoError(t, err)
	require.Equal(t, size(800, 800), result)

	result, err = jobs.Jobs[1].Run()
	require.NoError(t, err)
	require.Equal(t, size(1000, 750), result)
}

func TestMarshalRoundTrip(t *testing.T) {
	jobs, err := Parse([]byte(jobsYAML), FormatYAML)
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(format.String(), func(t *testing.T) {
			b, err := jobs.Marshal(format)
			require.NoError(t, err)
			parsed, err := Parse(b, format)
			require.NoError(t, err)
			require.Equal(t, jobs, parsed)
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "jobs.yml")
	require.NoError(t, os.WriteFile(path, []byte(jobsYAML), 0o644))
	jobs, err := Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, jobs.Jobs, 2)

	path = filepath.Join(dir, "jobs.toml")
	require.NoError(t, os.WriteFile(path, []byte(jobsTOML), 0o644))
	jobs, err = Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, jobs.Jobs, 2)

	_, err = Load(ctx, filepath.Join(dir, "jobs.ini"))
	require.Error(t, err)

	_, err = Load(ctx, filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestJobRunErrors(t *testing.T) {
	_, err := Job{
		Source:         framesize.NewSize(framesize.Defined(960), framesize.Undefined),
		Target:         size(100, 100),
		ScaleDirection: framesize.ScaleDirectionAny,
	}.Run()
	require.ErrorAs(t, err, &framesize.ErrInvalidArgument{})

	_, err = Job{
		Source: size(1920, 1080),
		Target: framesize.Size{},
	}.Run()
	require.ErrorAs(t, err, &framesize.ErrInvalidArgument{})
}
