package model

import "strings"

// Kind identifies a color model.
type Kind int

const (
	KindRgb Kind = iota + 1
	KindGrayscale
	KindHsb
	KindHsl
	KindCmyk
	KindYCrCb
	KindXyz
	KindLab
)

var kindNames = map[Kind]string{
	KindRgb:       "rgb",
	KindGrayscale: "grayscale",
	KindHsb:       "hsb",
	KindHsl:       "hsl",
	KindCmyk:      "cmyk",
	KindYCrCb:     "ycrcb",
	KindXyz:       "xyz",
	KindLab:       "lab",
}

var kindAliases = map[string]Kind{
	"gray":    KindGrayscale,
	"grey":    KindGrayscale,
	"hsv":     KindHsb,
	"ycbcr":   KindYCrCb,
	"cie-xyz": KindXyz,
	"cie-lab": KindLab,
}

// String returns the lower-case model name, e.g. "hsb".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kinds returns every model kind in canonical order.
func Kinds() []Kind {
	return []Kind{KindRgb, KindGrayscale, KindHsb, KindHsl, KindCmyk, KindYCrCb, KindXyz, KindLab}
}

// ParseKind resolves a model name (case-insensitive). Besides the canonical
// names it accepts "gray", "grey", "hsv", "ycbcr", "cie-xyz" and "cie-lab".
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return k, nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}
	return 0, &FormatError{Input: name, Reason: "unknown color model"}
}

// Model is implemented by every color value type in this package.
type Model interface {
	// Kind reports which color model the value belongs to.
	Kind() Kind

	// Join renders the fields in canonical order separated by sep.
	Join(sep string) string

	// String returns the tagged display form, e.g. "HSB: (0,100,100)".
	String() string
}
