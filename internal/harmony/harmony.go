// Package harmony derives color schemes by rotating the hue of an HSB color.
package harmony

import (
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/colorpad-mcp/internal/model"
	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// Scheme is a hue-rotation rule.
type Scheme int

const (
	Monochromatic Scheme = iota + 1
	Complementary
	SplitComplementary
	Analogous
	Triadic
	Tetradic
)

var schemeNames = map[Scheme]string{
	Monochromatic:      "monochromatic",
	Complementary:      "complementary",
	SplitComplementary: "split-complementary",
	Analogous:          "analogous",
	Triadic:            "triadic",
	Tetradic:           "tetradic",
}

// String returns the scheme name accepted by ParseScheme.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// Schemes lists every scheme in declaration order.
func Schemes() []Scheme {
	return []Scheme{Monochromatic, Complementary, SplitComplementary, Analogous, Triadic, Tetradic}
}

// ParseScheme looks a scheme up by name, ignoring case. Underscores are
// accepted in place of hyphens.
func ParseScheme(name string) (Scheme, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for s, sn := range schemeNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown harmony scheme %q", name)
}

// Default angles and the ranges a caller-supplied angle is clamped into.
const (
	DefaultSplitAngle = 150.0
	DefaultAngle      = 60.0

	minSplitAngle = 90.0
	maxSplitAngle = 179.9
	minAngle      = 1.0
	maxAngle      = 90.0
)

// Hues returns the hues of scheme s around hue, starting with hue itself.
//
// angle is the spread between the base hue and its neighbours. It applies to
// the split-complementary, analogous and tetradic schemes; nil selects the
// default, and other values are clamped (90-179.9 for split-complementary,
// 1-90 otherwise).
func Hues(hue float64, s Scheme, angle *float64) ([]float64, error) {
	spread := func(def, lo, hi float64) float64 {
		if angle == nil {
			return def
		}
		return numeric.Clamp(*angle, lo, hi)
	}

	switch s {
	case Monochromatic:
		return []float64{hue}, nil
	case Complementary:
		return []float64{hue, wrap(hue + 180)}, nil
	case SplitComplementary:
		a := spread(DefaultSplitAngle, minSplitAngle, maxSplitAngle)
		return []float64{hue, wrap(hue + a), wrap(hue + 360 - a)}, nil
	case Analogous:
		a := spread(DefaultAngle, minAngle, maxAngle)
		return []float64{hue, wrap(hue + a), wrap(hue + 360 - a)}, nil
	case Triadic:
		return []float64{hue, wrap(hue + 120), wrap(hue + 240)}, nil
	case Tetradic:
		a := spread(DefaultAngle, minAngle, maxAngle)
		return []float64{hue, wrap(hue + a), wrap(hue + 180), wrap(hue + 180 + a)}, nil
	default:
		return nil, fmt.Errorf("unknown harmony scheme %v", s)
	}
}

// Apply builds the scheme around base, keeping its saturation and
// brightness for every member.
func Apply(base model.Hsb, s Scheme, angle *float64) ([]model.Hsb, error) {
	hues, err := Hues(base.H(), s, angle)
	if err != nil {
		return nil, err
	}
	out := make([]model.Hsb, len(hues))
	for i, h := range hues {
		if out[i], err = model.NewHsb(h, base.S(), base.B()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func wrap(h float64) float64 {
	return math.Mod(h, 360)
}
