package model

import "strings"

// Parse parses comma-separated text as a value of the given kind.
func Parse(kind Kind, text string) (Model, error) {
	switch kind {
	case KindRgb:
		return ParseRgb(text)
	case KindGrayscale:
		return ParseGrayscale(text)
	case KindHsb:
		return ParseHsb(text)
	case KindHsl:
		return ParseHsl(text)
	case KindCmyk:
		return ParseCmyk(text)
	case KindYCrCb:
		return ParseYCrCb(text)
	case KindXyz:
		return ParseXyz(text)
	case KindLab:
		return ParseLab(text)
	default:
		return nil, &FormatError{Kind: kind, Input: text, Reason: "unsupported color model"}
	}
}

// ParseInput parses user input where format is either a model name accepted
// by ParseKind, "hex" (relaxed hex, see RgbFromHexEnhanced) or "name"
// (CSS color keyword).
func ParseInput(format, text string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "hex":
		return RgbFromHexEnhanced(strings.TrimSpace(text))
	case "name":
		return RgbFromName(text)
	}
	kind, err := ParseKind(format)
	if err != nil {
		return nil, err
	}
	return Parse(kind, text)
}
