package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

const formatDescription = "Input format: a color model (rgb, grayscale, hsb/hsv, hsl, cmyk, ycrcb, xyz, lab), " +
	"'hex' or 'name' (CSS color keyword)"

const valueDescription = "Color value. Models take comma-separated numbers in canonical order " +
	"(e.g. '255,128,0' for rgb, '20,100,100' for hsb); hex takes '#ff8000', 'ff8000' or 'f80'; " +
	"name takes a keyword such as 'teal'"

const regionDescription = "Optional region: a name (full, top-left, top-right, bottom-left, bottom-right, " +
	"top-half, bottom-half, left-half, right-half, center) or an object {x1, y1, x2, y2} with exclusive x2/y2"

// colorInputSchema describes a {format, value} object.
func colorInputSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties":  colorInputProperties(),
		"required":    []string{"format", "value"},
	}
}

func colorInputProperties() map[string]interface{} {
	return map[string]interface{}{
		"format": map[string]interface{}{
			"type":        "string",
			"description": formatDescription,
		},
		"value": map[string]interface{}{
			"type":        "string",
			"description": valueDescription,
		},
	}
}

func regionSchema() map[string]interface{} {
	return map[string]interface{}{
		"description": regionDescription,
		"oneOf": []interface{}{
			map[string]interface{}{"type": "string"},
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x1": map[string]interface{}{"type": "integer"},
					"y1": map[string]interface{}{"type": "integer"},
					"x2": map[string]interface{}{"type": "integer"},
					"y2": map[string]interface{}{"type": "integer"},
				},
				"required": []string{"x1", "y1", "x2", "y2"},
			},
		},
	}
}

func reloadSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "boolean",
		"description": "Re-read the file even if it was loaded before. Default false",
		"default":     false,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	harmonyProps := colorInputProperties()
	harmonyProps["scheme"] = map[string]interface{}{
		"type":        "string",
		"description": "Harmony scheme",
		"enum": []string{
			"monochromatic", "complementary", "split-complementary",
			"analogous", "triadic", "tetradic",
		},
	}
	harmonyProps["angle"] = map[string]interface{}{
		"type": "number",
		"description": "Optional spread in degrees for split-complementary (default 150, clamped to 90-179.9), " +
			"analogous and tetradic (default 60, clamped to 1-90)",
	}

	return []Tool{
		// Conversion
		{
			Name: "color_convert",
			Description: "Convert a color into every supported model: hex, RGB, grayscale, HSB, HSL, CMYK, " +
				"YCrCb, CIE-XYZ and CIE-Lab.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": colorInputProperties(),
				"required":   []string{"format", "value"},
			},
		},
		{
			Name:        "color_harmony",
			Description: "Build a color scheme by rotating the hue of a base color, keeping its saturation and brightness.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": harmonyProps,
				"required":   []string{"format", "value", "scheme"},
			},
		},
		{
			Name:        "color_difference",
			Description: "Measure the perceptual difference between two colors (CIE76 and CIEDE2000, 0-100 scale).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorInputSchema("First color"),
					"b": colorInputSchema("Second color"),
				},
				"required": []string{"a", "b"},
			},
		},

		// Image sources
		{
			Name: "color_sample_image",
			Description: "Sample a color from an image, either one pixel (x, y) or the average of a region, " +
				"and convert it into every supported model.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate of the pixel (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate of the pixel (0-based)",
					},
					"region": regionSchema(),
					"reload": reloadSchema(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "color_palette",
			Description: "Extract the most common colors of an image or region, most frequent first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Default 5",
						"default":     defaultPaletteCount,
					},
					"region": regionSchema(),
					"reload": reloadSchema(),
				},
				"required": []string{"path"},
			},
		},

		// Introspection
		{
			Name:        "color_registry",
			Description: "List the supported color models and every registered direct conversion.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
