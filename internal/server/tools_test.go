package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"leaderboard_scan_frame",
		"leaderboard_sample_color",
		"leaderboard_draw_bounds",
		"leaderboard_crop_cell",
		"leaderboard_extract_frame",
		"leaderboard_extract_video",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("tool %s defined twice", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(toolMap) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(toolMap), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || props["path"] == nil {
				t.Fatal("InputSchema must describe a path property")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			hasPath := false
			for _, r := range required {
				if r == "path" {
					hasPath = true
				}
				if _, ok := props[r]; !ok {
					t.Errorf("required property %q is not described", r)
				}
			}
			if !hasPath {
				t.Error("every tool requires 'path'")
			}
		})
	}
}
