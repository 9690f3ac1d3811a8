package framesize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleDirectionInvert(t *testing.T) {
	require.Equal(t, ScaleDirectionAny, ScaleDirectionAny.Invert())
	require.Equal(t, ScaleDirectionNone, ScaleDirectionNone.Invert())
	require.Equal(t, ScaleDirectionUpscaleOnly, ScaleDirectionDownscaleOnly.Invert())
	require.Equal(t, ScaleDirectionDownscaleOnly, ScaleDirectionUpscaleOnly.Invert())
	for _, d := range ScaleDirections() {
		require.Equal(t, d, d.Invert().Invert())
	}
}

func TestScaleDirectionIntersects(t *testing.T) {
	tests := []struct {
		a, b     ScaleDirection
		expected bool
	}{
		{ScaleDirectionNone, ScaleDirectionNone, false},
		{ScaleDirectionNone, ScaleDirectionAny, false},
		{ScaleDirectionDownscaleOnly, ScaleDirectionUpscaleOnly, false},
		{ScaleDirectionDownscaleOnly, ScaleDirectionAny, true},
		{ScaleDirectionUpscaleOnly, ScaleDirectionUpscaleOnly, true},
		{ScaleDirectionAny, ScaleDirectionAny, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.a.Intersects(tt.b), "%s ∩ %s", tt.a, tt.b)
		require.Equal(t, tt.expected, tt.b.Intersects(tt.a), "%s ∩ %s", tt.b, tt.a)
	}
}

func TestScaleDirectionPermits(t *testing.T) {
	require.True(t, ScaleDirectionDownscaleOnly.Permits(100, 50))
	require.False(t, ScaleDirectionDownscaleOnly.Permits(50, 100))
	require.True(t, ScaleDirectionUpscaleOnly.Permits(50, 100))
	require.False(t, ScaleDirectionUpscaleOnly.Permits(100, 50))
	require.False(t, ScaleDirectionNone.Permits(100, 50))
	for _, d := range ScaleDirections() {
		require.False(t, d.Permits(100, 100), d.String())
	}
}

func TestScaleDirectionFromString(t *testing.T) {
	for _, d := range ScaleDirections() {
		parsed, err := ScaleDirectionFromString(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	d, err := ScaleDirectionFromString(`"DOWNSCALE_ONLY"`)
	require.NoError(t, err)
	require.Equal(t, ScaleDirectionDownscaleOnly, d)

	_, err = ScaleDirectionFromString("sideways")
	require.Error(t, err)

	var v ScaleDirection
	require.NoError(t, v.Set("up"))
	require.Equal(t, ScaleDirectionUpscaleOnly, v)

	_, err = ScaleDirection(0x80).MarshalText()
	require.ErrorAs(t, err, &ErrUnknownScaleDirection{})
}

func TestFitPolicy(t *testing.T) {
	require.Equal(t, FitPolicyFit, FitPolicyFill.Invert())
	require.Equal(t, FitPolicyFill, FitPolicyFit.Invert())

	for _, p := range FitPolicies() {
		parsed, err := FitPolicyFromString(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)

		b, err := p.MarshalYAML()
		require.NoError(t, err)
		var fromYAML FitPolicy
		require.NoError(t, fromYAML.UnmarshalYAML(b))
		require.Equal(t, p, fromYAML)
	}

	_, err := FitPolicyFromString("stretch")
	require.Error(t, err)
	require.False(t, FitPolicy(5).IsValid())
	_, err = FitPolicy(5).MarshalText()
	require.ErrorAs(t, err, &ErrUnknownFitPolicy{})
}
