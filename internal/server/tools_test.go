package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"color_convert",
		"color_harmony",
		"color_difference",
		"color_sample_image",
		"color_palette",
		"color_registry",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties should be a map")
			}

			// Every tool executes, so every schema must survive the wire.
			if _, err := json.Marshal(tool); err != nil {
				t.Errorf("tool does not marshal: %v", err)
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	want := map[string][]string{
		"color_convert":      {"format", "value"},
		"color_harmony":      {"format", "value", "scheme"},
		"color_difference":   {"a", "b"},
		"color_sample_image": {"path"},
		"color_palette":      {"path"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for name, fields := range want {
		t.Run(name, func(t *testing.T) {
			required, ok := toolMap[name].InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			have := make(map[string]bool)
			for _, r := range required {
				have[r] = true
			}
			for _, f := range fields {
				if !have[f] {
					t.Errorf("should require %q, got %v", f, required)
				}
			}
		})
	}
}

func TestToolDefinitions_HarmonySchemes(t *testing.T) {
	var tool Tool
	for _, tt := range GetToolDefinitions() {
		if tt.Name == "color_harmony" {
			tool = tt
			break
		}
	}

	props, ok := tool.InputSchema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties should be a map")
	}
	scheme, ok := props["scheme"].(map[string]interface{})
	if !ok {
		t.Fatal("scheme property should exist and be a map")
	}
	enum, ok := scheme["enum"].([]string)
	if !ok {
		t.Fatal("scheme should have enum")
	}
	if len(enum) != 6 {
		t.Errorf("scheme enum: got %v, want 6 schemes", enum)
	}
	if _, ok := props["angle"]; !ok {
		t.Error("angle property missing")
	}
}

func TestToolDefinitions_PaletteDefaultCount(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "color_palette" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		count := props["count"].(map[string]interface{})
		if count["default"] != defaultPaletteCount {
			t.Errorf("count default: got %v, want %d", count["default"], defaultPaletteCount)
		}
		return
	}
	t.Fatal("color_palette tool not found")
}

func TestHandleToolsList(t *testing.T) {
	s := New(Options{})
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}
