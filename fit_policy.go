// fit_policy.go defines the FitPolicy enum and its methods.

package framesize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// FitPolicy defines which dimension wins when scaling to match a target.
type FitPolicy int

const (
	// FitPolicyFill scales so the result covers the target
	// (both dimensions are >= the target), preserving the aspect ratio.
	FitPolicyFill = FitPolicy(iota)

	// FitPolicyFit scales so the result is contained within the target
	// (both dimensions are <= the target), preserving the aspect ratio.
	FitPolicyFit

	endOfFitPolicy
)

var _ pflag.Value = (*FitPolicy)(nil)

func FitPolicies() []FitPolicy {
	return []FitPolicy{
		FitPolicyFill,
		FitPolicyFit,
	}
}

func (p FitPolicy) IsValid() bool {
	return p >= 0 && p < endOfFitPolicy
}

// Invert swaps Fill and Fit.
func (p FitPolicy) Invert() FitPolicy {
	switch p {
	case FitPolicyFill:
		return FitPolicyFit
	case FitPolicyFit:
		return FitPolicyFill
	default:
		return p
	}
}

func (p FitPolicy) String() string {
	switch p {
	case FitPolicyFill:
		return "fill"
	case FitPolicyFit:
		return "fit"
	default:
		return fmt.Sprintf("unknown_%d", int(p))
	}
}

func FitPolicyFromString(s string) (FitPolicy, error) {
	s = strings.Trim(strings.ToLower(s), " \"\n\r\t")
	for _, candidate := range FitPolicies() {
		if candidate.String() == s {
			return candidate, nil
		}
	}
	return -1, fmt.Errorf("unknown fit policy: '%s'", s)
}

func (p *FitPolicy) Set(s string) error {
	v, err := FitPolicyFromString(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p FitPolicy) Type() string {
	return "fit-policy"
}

func (p FitPolicy) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, ErrUnknownFitPolicy{FitPolicy: p}
	}
	return []byte(p.String()), nil
}

func (p *FitPolicy) UnmarshalText(b []byte) error {
	return p.Set(string(b))
}

func (p FitPolicy) MarshalYAML() ([]byte, error) {
	if !p.IsValid() {
		return nil, ErrUnknownFitPolicy{FitPolicy: p}
	}
	return json.Marshal(p.String())
}

func (p *FitPolicy) UnmarshalYAML(b []byte) error {
	return p.Set(string(b))
}
