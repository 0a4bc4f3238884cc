// Package server implements the MCP (Model Context Protocol) server for the
// color conversion engine.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion,
// harmony, difference and image sampling through the MCP protocol, so an MCP
// client can translate a color between models without doing the arithmetic
// itself.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversion:
//   - color_convert: Every model of one color
//   - color_harmony: Hue-rotation schemes around a base color
//   - color_difference: CIE76 and CIEDE2000 distance between two colors
//
// Image sources:
//   - color_sample_image: Pixel or region-average color of an image
//   - color_palette: Most common colors of an image or region
//
// Introspection:
//   - color_registry: Supported models and registered conversions
//
// Colors are passed as {format, value}. The format is a model name
// ("rgb", "hsb", "lab", ...), "hex" or "name"; the value is the model's
// comma-separated text form.
//
// # Conversions
//
// Every tool converts through a bridge of the configured variant (lazy by
// default) backed by the configured conversion registry, so the grayscale
// algorithm and bridge variant chosen in the configuration apply to all
// tools alike.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Failures are returned as JSON-RPC error responses with:
//   - code: -32602 when the arguments are at fault (malformed JSON, unknown
//     tool or scheme, a value outside its model's range), -32000 for any
//     other tool failure such as an unreadable image
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(server.Options{UpperHex: true})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
