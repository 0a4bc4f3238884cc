package bridge

import (
	"github.com/ironsheep/colorpad-mcp/internal/model"
	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// Snapshot is a serializable view of a Bridge. Floating fields carry the
// same precision as the canonical text forms: two decimals, five for XYZ.
type Snapshot struct {
	Hex       string    `json:"hex" yaml:"hex"`
	Rgb       []int     `json:"rgb" yaml:"rgb,flow"`
	Grayscale int       `json:"grayscale" yaml:"grayscale"`
	Hsb       []float64 `json:"hsb" yaml:"hsb,flow"`
	Hsl       []float64 `json:"hsl" yaml:"hsl,flow"`
	Cmyk      []int     `json:"cmyk" yaml:"cmyk,flow"`
	YCrCb     []int     `json:"ycrcb" yaml:"ycrcb,flow"`
	Xyz       []float64 `json:"xyz" yaml:"xyz,flow"`
	Lab       []float64 `json:"lab" yaml:"lab,flow"`
}

// TakeSnapshot reads every model out of b. On a Lazy bridge this forces all
// models to be computed.
func TakeSnapshot(b Bridge, upperHex bool) (Snapshot, error) {
	hsb, err := b.Hsb()
	if err != nil {
		return Snapshot{}, err
	}
	hsl, err := b.Hsl()
	if err != nil {
		return Snapshot{}, err
	}
	cmyk, err := b.Cmyk()
	if err != nil {
		return Snapshot{}, err
	}
	ycrcb, err := b.YCrCb()
	if err != nil {
		return Snapshot{}, err
	}
	xyz, err := b.Xyz()
	if err != nil {
		return Snapshot{}, err
	}
	lab, err := b.Lab()
	if err != nil {
		return Snapshot{}, err
	}

	rgb := b.Rgb()
	return Snapshot{
		Hex:       "#" + b.Hex(upperHex),
		Rgb:       []int{int(rgb.R()), int(rgb.G()), int(rgb.B())},
		Grayscale: int(b.Grayscale().Value()),
		Hsb:       round2(hsb.H(), hsb.S(), hsb.B()),
		Hsl:       round2(hsl.H(), hsl.S(), hsl.L()),
		Cmyk:      []int{int(cmyk.C()), int(cmyk.M()), int(cmyk.Y()), int(cmyk.K())},
		YCrCb:     []int{int(ycrcb.Y()), int(ycrcb.Cr()), int(ycrcb.Cb())},
		Xyz:       roundN(5, xyz.X(), xyz.Y(), xyz.Z()),
		Lab:       round2(lab.L(), lab.A(), lab.B()),
	}, nil
}

// Describe renders b as one canonical display string per model, starting
// with the hex form.
func Describe(b Bridge, upperHex bool) ([]string, error) {
	lines := []string{"HEX: #" + b.Hex(upperHex), b.Rgb().String(), b.Grayscale().String()}
	for _, get := range []func() (model.Model, error){
		func() (model.Model, error) { return b.Hsb() },
		func() (model.Model, error) { return b.Hsl() },
		func() (model.Model, error) { return b.Cmyk() },
		func() (model.Model, error) { return b.YCrCb() },
		func() (model.Model, error) { return b.Xyz() },
		func() (model.Model, error) { return b.Lab() },
	} {
		m, err := get()
		if err != nil {
			return nil, err
		}
		lines = append(lines, m.String())
	}
	return lines, nil
}

func round2(vs ...float64) []float64 { return roundN(2, vs...) }

func roundN(digits int, vs ...float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = numeric.RoundTo(v, digits)
	}
	return out
}
