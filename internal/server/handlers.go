package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/ironsheep/colorpad-mcp/internal/bridge"
	"github.com/ironsheep/colorpad-mcp/internal/convert"
	"github.com/ironsheep/colorpad-mcp/internal/harmony"
	"github.com/ironsheep/colorpad-mcp/internal/imaging"
	"github.com/ironsheep/colorpad-mcp/internal/model"
	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

// defaultPaletteCount is the number of swatches color_palette returns when
// count is omitted.
const defaultPaletteCount = 5

// errInvalidArgs marks errors caused by the caller's arguments rather than
// by tool execution.
var errInvalidArgs = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_convert").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Bad arguments (malformed JSON, unknown names, out-of-range or unparsable
// color values) return -32602; any other failure returns -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tools/call %s %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if isArgumentError(err) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversion
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_harmony":
		return s.handleColorHarmony(args)
	case "color_difference":
		return s.handleColorDifference(args)

	// Image sources
	case "color_sample_image":
		return s.handleColorSampleImage(args)
	case "color_palette":
		return s.handleColorPalette(args)

	// Introspection
	case "color_registry":
		return s.handleColorRegistry(args)

	default:
		return nil, fmt.Errorf("%w: unknown tool: %s", errInvalidArgs, name)
	}
}

func isArgumentError(err error) bool {
	return errors.Is(err, errInvalidArgs) ||
		errors.Is(err, model.ErrRange) ||
		errors.Is(err, model.ErrFormat)
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is left out of the response.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating absent arguments as an
// empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

// colorInput is a color given as text in one of the accepted formats.
type colorInput struct {
	Format string `json:"format"`
	Value  string `json:"value"`
}

// bridgeFor parses the input and wraps it in a bridge of the configured variant.
func (s *Server) bridgeFor(in colorInput) (bridge.Bridge, error) {
	if in.Format == "" {
		return nil, fmt.Errorf("%w: format is required", errInvalidArgs)
	}
	pivot, err := model.ParseInput(in.Format, in.Value)
	if err != nil {
		return nil, err
	}
	return bridge.New(s.variant, s.reg, pivot)
}

// === Conversion Handlers ===

type colorConvertResult struct {
	Pivot    string          `json:"pivot"`
	Snapshot bridge.Snapshot `json:"snapshot"`
	Text     []string        `json:"text"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorInput
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	b, err := s.bridgeFor(a)
	if err != nil {
		return nil, err
	}
	snap, err := bridge.TakeSnapshot(b, s.upperHex)
	if err != nil {
		return nil, err
	}
	text, err := bridge.Describe(b, s.upperHex)
	if err != nil {
		return nil, err
	}

	return colorConvertResult{
		Pivot:    strings.ToLower(strings.TrimSpace(a.Format)),
		Snapshot: snap,
		Text:     text,
	}, nil
}

type colorHarmonyArgs struct {
	colorInput
	Scheme string   `json:"scheme"`
	Angle  *float64 `json:"angle,omitempty"`
}

type harmonyColor struct {
	Hsb []float64 `json:"hsb"`
	Hex string    `json:"hex"`
}

type colorHarmonyResult struct {
	Scheme string         `json:"scheme"`
	Base   string         `json:"base"`
	Colors []harmonyColor `json:"colors"`
}

func (s *Server) handleColorHarmony(args json.RawMessage) (interface{}, error) {
	var a colorHarmonyArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	scheme, err := harmony.ParseScheme(a.Scheme)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	b, err := s.bridgeFor(a.colorInput)
	if err != nil {
		return nil, err
	}
	base, err := b.Hsb()
	if err != nil {
		return nil, err
	}
	variants, err := harmony.Apply(base, scheme, a.Angle)
	if err != nil {
		return nil, err
	}

	colors := make([]harmonyColor, 0, len(variants))
	for _, hsb := range variants {
		rgb, err := convert.To[model.Rgb](s.reg, hsb)
		if err != nil {
			return nil, err
		}
		colors = append(colors, harmonyColor{
			Hsb: []float64{
				numeric.RoundTo(hsb.H(), 2),
				numeric.RoundTo(hsb.S(), 2),
				numeric.RoundTo(hsb.B(), 2),
			},
			Hex: "#" + rgb.Hex(s.upperHex),
		})
	}

	return colorHarmonyResult{
		Scheme: scheme.String(),
		Base:   "#" + b.Hex(s.upperHex),
		Colors: colors,
	}, nil
}

type colorDifferenceArgs struct {
	A colorInput `json:"a"`
	B colorInput `json:"b"`
}

type colorDifferenceResult struct {
	A string `json:"a"`
	B string `json:"b"`
	bridge.Distance
}

func (s *Server) handleColorDifference(args json.RawMessage) (interface{}, error) {
	var a colorDifferenceArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	ba, err := s.bridgeFor(a.A)
	if err != nil {
		return nil, fmt.Errorf("a: %w", err)
	}
	bb, err := s.bridgeFor(a.B)
	if err != nil {
		return nil, fmt.Errorf("b: %w", err)
	}
	d, err := bridge.Difference(ba, bb)
	if err != nil {
		return nil, err
	}

	return colorDifferenceResult{
		A: "#" + ba.Hex(s.upperHex),
		B: "#" + bb.Hex(s.upperHex),
		Distance: bridge.Distance{
			CIE76:     numeric.RoundTo(d.CIE76, 4),
			CIEDE2000: numeric.RoundTo(d.CIEDE2000, 4),
		},
	}, nil
}

// === Image Source Handlers ===

// resolveRegion interprets a region argument, which is either a region name
// understood by imaging.NamedRegion or an {x1, y1, x2, y2} object. It
// returns nil when raw is absent.
func resolveRegion(img image.Image, raw json.RawMessage) (*imaging.Region, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		r, err := imaging.NamedRegion(img, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
		}
		return &r, nil
	}

	var r imaging.Region
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: region must be a name or {x1, y1, x2, y2}: %v", errInvalidArgs, err)
	}
	return &r, nil
}

// loadImage returns the cached decode of path. With reload set the cached
// copy is dropped first so that a file edited since the last call is read
// again.
func (s *Server) loadImage(path string, reload bool) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	if reload {
		s.cache.Evict(path)
	}
	return s.cache.Load(path)
}

type colorSampleImageArgs struct {
	Path   string          `json:"path"`
	X      *int            `json:"x,omitempty"`
	Y      *int            `json:"y,omitempty"`
	Region json.RawMessage `json:"region,omitempty"`
	Reload bool            `json:"reload,omitempty"`
}

type colorSampleImageResult struct {
	Image    imaging.Dimensions `json:"image"`
	Source   string             `json:"source"`
	Region   *imaging.Region    `json:"region,omitempty"`
	Snapshot bridge.Snapshot    `json:"snapshot"`
}

func (s *Server) handleColorSampleImage(args json.RawMessage) (interface{}, error) {
	var a colorSampleImageArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	if len(a.Region) == 0 && (a.X == nil || a.Y == nil) {
		return nil, fmt.Errorf("%w: either x and y or region is required", errInvalidArgs)
	}

	img, err := s.loadImage(a.Path, a.Reload)
	if err != nil {
		return nil, err
	}
	region, err := resolveRegion(img, a.Region)
	if err != nil {
		return nil, err
	}

	result := colorSampleImageResult{Image: imaging.GetDimensions(img)}
	var rgb model.Rgb
	switch {
	case region != nil:
		rgb, err = imaging.AverageColor(img, *region)
		result.Source = "region"
		result.Region = region
	case a.X != nil && a.Y != nil:
		rgb, err = imaging.SampleColor(img, *a.X, *a.Y)
		result.Source = "pixel"
	default:
		return nil, fmt.Errorf("%w: either x and y or region is required", errInvalidArgs)
	}
	if err != nil {
		return nil, err
	}

	b, err := bridge.New(s.variant, s.reg, rgb)
	if err != nil {
		return nil, err
	}
	if result.Snapshot, err = bridge.TakeSnapshot(b, s.upperHex); err != nil {
		return nil, err
	}
	return result, nil
}

type colorPaletteArgs struct {
	Path   string          `json:"path"`
	Count  int             `json:"count,omitempty"`
	Region json.RawMessage `json:"region,omitempty"`
	Reload bool            `json:"reload,omitempty"`
}

type paletteColor struct {
	Hex        string  `json:"hex"`
	Rgb        []int   `json:"rgb"`
	Percentage float64 `json:"percentage"`
}

type colorPaletteResult struct {
	Image  imaging.Dimensions `json:"image"`
	Colors []paletteColor     `json:"colors"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultPaletteCount
	}
	if a.Count < 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", errInvalidArgs, a.Count)
	}

	img, err := s.loadImage(a.Path, a.Reload)
	if err != nil {
		return nil, err
	}
	region, err := resolveRegion(img, a.Region)
	if err != nil {
		return nil, err
	}
	swatches, err := imaging.Palette(img, a.Count, region)
	if err != nil {
		return nil, err
	}

	colors := make([]paletteColor, 0, len(swatches))
	for _, sw := range swatches {
		c := sw.Color
		colors = append(colors, paletteColor{
			Hex:        "#" + c.Hex(s.upperHex),
			Rgb:        []int{int(c.R()), int(c.G()), int(c.B())},
			Percentage: numeric.RoundTo(sw.Percentage, 2),
		})
	}

	return colorPaletteResult{
		Image:  imaging.GetDimensions(img),
		Colors: colors,
	}, nil
}

// === Introspection Handlers ===

type colorRegistryResult struct {
	Bridge string   `json:"bridge"`
	Models []string `json:"models"`
	Pairs  []string `json:"pairs"`
}

func (s *Server) handleColorRegistry(args json.RawMessage) (interface{}, error) {
	var a struct{}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	kinds := model.Kinds()
	models := make([]string, len(kinds))
	for i, k := range kinds {
		models[i] = k.String()
	}
	pairs := s.reg.Pairs()
	names := make([]string, len(pairs))
	for i, p := range pairs {
		names[i] = p.String()
	}

	return colorRegistryResult{
		Bridge: string(s.variant),
		Models: models,
		Pairs:  names,
	}, nil
}
