// scale_direction.go defines the ScaleDirection flag set and its methods.

package framesize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ScaleDirection is a set of permitted resize directions.
type ScaleDirection uint8

const (
	ScaleDirectionAllowDownscale = ScaleDirection(1 << iota)
	ScaleDirectionAllowUpscale

	ScaleDirectionNone          = ScaleDirection(0)
	ScaleDirectionDownscaleOnly = ScaleDirectionAllowDownscale
	ScaleDirectionUpscaleOnly   = ScaleDirectionAllowUpscale
	ScaleDirectionAny           = ScaleDirectionAllowDownscale | ScaleDirectionAllowUpscale
)

var _ pflag.Value = (*ScaleDirection)(nil)

func ScaleDirections() []ScaleDirection {
	return []ScaleDirection{
		ScaleDirectionNone,
		ScaleDirectionDownscaleOnly,
		ScaleDirectionUpscaleOnly,
		ScaleDirectionAny,
	}
}

func (d ScaleDirection) IsValid() bool {
	return d&^ScaleDirectionAny == 0
}

func (d ScaleDirection) AllowsDownscale() bool {
	return d&ScaleDirectionAllowDownscale != 0
}

func (d ScaleDirection) AllowsUpscale() bool {
	return d&ScaleDirectionAllowUpscale != 0
}

// Permits reports whether resizing a dimension from "from" to "to" is allowed.
// Resizing to the same value is never a permitted (nor needed) change.
func (d ScaleDirection) Permits(from, to uint32) bool {
	switch {
	case to < from:
		return d.AllowsDownscale()
	case to > from:
		return d.AllowsUpscale()
	default:
		return false
	}
}

// Invert swaps DownscaleOnly and UpscaleOnly; None and Any are kept as is.
func (d ScaleDirection) Invert() ScaleDirection {
	var r ScaleDirection
	if d.AllowsDownscale() {
		r |= ScaleDirectionAllowUpscale
	}
	if d.AllowsUpscale() {
		r |= ScaleDirectionAllowDownscale
	}
	return r | d&^ScaleDirectionAny
}

// Intersects reports whether both sets permit at least one common direction.
func (d ScaleDirection) Intersects(other ScaleDirection) bool {
	return d&other != 0
}

func (d ScaleDirection) String() string {
	switch d {
	case ScaleDirectionNone:
		return "none"
	case ScaleDirectionDownscaleOnly:
		return "downscale-only"
	case ScaleDirectionUpscaleOnly:
		return "upscale-only"
	case ScaleDirectionAny:
		return "any"
	default:
		return fmt.Sprintf("unknown_%X", uint8(d))
	}
}

func ScaleDirectionFromString(s string) (ScaleDirection, error) {
	s = strings.Trim(strings.ToLower(s), " \"\n\r\t")
	s = strings.ReplaceAll(s, "_", "-")
	for _, candidate := range ScaleDirections() {
		if candidate.String() == s {
			return candidate, nil
		}
	}
	switch s {
	case "down", "downscale":
		return ScaleDirectionDownscaleOnly, nil
	case "up", "upscale":
		return ScaleDirectionUpscaleOnly, nil
	}
	return ScaleDirectionNone, fmt.Errorf("unknown scale direction: '%s'", s)
}

func (d *ScaleDirection) Set(s string) error {
	v, err := ScaleDirectionFromString(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d ScaleDirection) Type() string {
	return "scale-direction"
}

func (d ScaleDirection) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, ErrUnknownScaleDirection{ScaleDirection: d}
	}
	return []byte(d.String()), nil
}

func (d *ScaleDirection) UnmarshalText(b []byte) error {
	return d.Set(string(b))
}

func (d ScaleDirection) MarshalYAML() ([]byte, error) {
	if !d.IsValid() {
		return nil, ErrUnknownScaleDirection{ScaleDirection: d}
	}
	return json.Marshal(d.String())
}

func (d *ScaleDirection) UnmarshalYAML(b []byte) error {
	return d.Set(string(b))
}
