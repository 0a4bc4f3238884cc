package bridge

import (
	"fmt"

	"github.com/ironsheep/colorpad-mcp/internal/convert"
	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// Bridge is read access to one color in every model.
//
// RGB and grayscale are always known. The remaining accessors return an
// error only when the registry behind the bridge fails to convert.
type Bridge interface {
	Rgb() model.Rgb
	Grayscale() model.Grayscale
	Hsb() (model.Hsb, error)
	Hsl() (model.Hsl, error)
	Cmyk() (model.Cmyk, error)
	YCrCb() (model.YCrCb, error)
	Xyz() (model.Xyz, error)
	Lab() (model.Lab, error)
	Hex(upper bool) string
}

// Variant names a Bridge implementation.
type Variant string

const (
	VariantEager Variant = "eager"
	VariantLazy  Variant = "lazy"
)

// ParseVariant validates a variant name.
func ParseVariant(name string) (Variant, error) {
	switch v := Variant(name); v {
	case VariantEager, VariantLazy:
		return v, nil
	default:
		return "", fmt.Errorf("unknown bridge variant %q (want eager or lazy)", name)
	}
}

// New builds a bridge of the given variant around pivot.
func New(v Variant, reg *convert.Registry, pivot model.Model) (Bridge, error) {
	switch v {
	case VariantEager:
		return NewEager(reg, pivot)
	case VariantLazy:
		return NewLazy(reg, pivot)
	default:
		return nil, fmt.Errorf("unknown bridge variant %q", v)
	}
}

// registry returns reg, or the process default registry when reg is nil.
func registry(reg *convert.Registry) *convert.Registry {
	if reg == nil {
		return convert.Default()
	}
	return reg
}

// toRgb converts any pivot except Lab straight to RGB.
func toRgb(reg *convert.Registry, pivot model.Model) (model.Rgb, error) {
	if rgb, ok := pivot.(model.Rgb); ok {
		return rgb, nil
	}
	return convert.To[model.Rgb](reg, pivot)
}
