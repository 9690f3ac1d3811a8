// rational.go defines the Rational type used to express aspect ratios as fractions.

// Package types provides common value types used throughout the framesize project.
package types

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

type Rational struct {
	Num int
	Den int
}

// Reduce divides both parts by their greatest common divisor.
func (r Rational) Reduce() Rational {
	g := gcd(abs(r.Num), abs(r.Den))
	if g <= 1 {
		return r
	}
	return Rational{
		Num: r.Num / g,
		Den: r.Den / g,
	}
}

func RationalFromFloat64(f float64) Rational {
	if float64(int(f)) == f {
		return Rational{Num: int(f), Den: 1}
	}

	// 1e-6 precision is far beyond what a pixel grid can express
	r := Rational{
		Num: int(math.Round(f * 1000000)),
		Den: 1000000,
	}
	g := big.NewInt(0).GCD(nil, nil, big.NewInt(int64(abs(r.Num))), big.NewInt(int64(r.Den))).Int64()
	if g > 1 {
		r.Num /= int(g)
		r.Den /= int(g)
	}
	return r
}

// RationalFromString parses "16:9", "16/9" or a decimal like "1.7778".
func RationalFromString(s string) (*Rational, error) {
	var r Rational
	s = strings.TrimSpace(s)
	switch {
	case len(s) == 0:
		return nil, fmt.Errorf("unable to parse Rational from empty string")
	case strings.ContainsAny(s, ":/"):
		s = strings.Replace(s, ":", "/", 1)
		if _, err := fmt.Sscanf(s, "%d/%d", &r.Num, &r.Den); err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse Rational from %q: %w", s, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
			return nil, fmt.Errorf("unable to parse Rational from %q: the value is out of range", s)
		}
		r = RationalFromFloat64(f)
	}
	if r.Den == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &r, nil
}

func (r Rational) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unable to unmarshal Rational from JSON '%s': %w", b, err)
	}
	return r.UnmarshalText([]byte(s))
}

func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rational) UnmarshalText(b []byte) error {
	v, err := RationalFromString(string(b))
	if err != nil {
		return fmt.Errorf("unable to unmarshal Rational from string %q: %w", b, err)
	}
	*r = *v
	return nil
}

func (r *Rational) UnmarshalYAML(b []byte) error {
	return r.UnmarshalText([]byte(strings.Trim(string(b), " \"'\n\r\t")))
}

func (r Rational) MarshalYAML() ([]byte, error) {
	return r.MarshalJSON()
}

func gcd(a, b int) int {
	for a != 0 {
		a, b = b%a, a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
