package bridge

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Distance holds two perceptual color differences on the usual 0-100 Lab
// scale.
type Distance struct {
	CIE76     float64 `json:"cie76" yaml:"cie76"`
	CIEDE2000 float64 `json:"ciede2000" yaml:"ciede2000"`
}

// Difference measures how far apart a and b are. CIE76 is the Euclidean
// distance between the bridges' own Lab values; CIEDE2000 is computed by
// go-colorful from the RGB values.
func Difference(a, b Bridge) (Distance, error) {
	la, err := a.Lab()
	if err != nil {
		return Distance{}, err
	}
	lb, err := b.Lab()
	if err != nil {
		return Distance{}, err
	}

	ca, ok := colorful.MakeColor(a.Rgb())
	if !ok {
		return Distance{}, fmt.Errorf("bridge: cannot convert %v", a.Rgb())
	}
	cb, ok := colorful.MakeColor(b.Rgb())
	if !ok {
		return Distance{}, fmt.Errorf("bridge: cannot convert %v", b.Rgb())
	}

	dl, da, db := la.L()-lb.L(), la.A()-lb.A(), la.B()-lb.B()
	return Distance{
		CIE76: math.Sqrt(dl*dl + da*da + db*db),
		// go-colorful scales L to 0-1.
		CIEDE2000: ca.DistanceCIEDE2000(cb) * 100,
	}, nil
}
