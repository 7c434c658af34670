package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// probeProperties lets a caller override the configured probe line.
func probeProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty("Absolute path to the frame image"),
		"probe_x": map[string]interface{}{
			"type":        "integer",
			"description": "X coordinate of the probe line. Defaults to the configured value",
		},
		"y_start": map[string]interface{}{
			"type":        "integer",
			"description": "First Y coordinate sampled (inclusive)",
		},
		"y_end": map[string]interface{}{
			"type":        "integer",
			"description": "Last Y coordinate sampled (inclusive)",
		},
		"min_row_height": map[string]interface{}{
			"type":        "integer",
			"description": "Bands shorter than this are not treated as rows",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Row Detection
		{
			Name:        "leaderboard_scan_frame",
			Description: "Classify every pixel on the probe line of a leaderboard frame and return the row bounds (heading, light, dark, personal). Bounds shorter than the minimum row height are listed under all but not under rows.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": probeProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "leaderboard_sample_color",
			Description: "Get the color at a pixel of a frame and the row type the classifier assigns to it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the frame image"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "leaderboard_draw_bounds",
			Description: "Outline the classified bounds of a frame in per-type colors (heading yellow, light green, dark magenta, personal cyan). Writes a PNG when output is given, otherwise returns it base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty("Absolute path to the frame image"),
					"output": pathProperty("Optional path for the overlay PNG"),
				},
				"required": []string{"path"},
			},
		},

		// OCR
		{
			Name:        "leaderboard_crop_cell",
			Description: "Crop one column of one row from a frame, exactly as it is handed to OCR, and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the frame image"),
					"column": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"ranking", "nickname", "points", "wins_losses", "win_percent", "rating"},
						"description": "Column to crop",
					},
					"start": map[string]interface{}{
						"type":        "integer",
						"description": "Top of the row",
					},
					"end": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom of the row",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "column", "start", "end"},
			},
		},
		{
			Name:        "leaderboard_extract_frame",
			Description: "Locate and OCR every row of a single frame. Returns one partial row per row with a readable ranking; fields that fail validation are reported as rejected with the raw text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the frame image"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "leaderboard_extract_video",
			Description: "Extract the consensus leaderboard from a recording or a directory of frames. Each field is the value read most often across frames; rows missing a field are listed as incomplete.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the video file or frame directory"),
					"backend": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"ffmpeg", "directory", "gocv"},
						"description": "Frame decoder. Defaults to directory for directories and the configured backend otherwise",
					},
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Frames processed in parallel",
					},
					"start_offset": map[string]interface{}{
						"type":        "string",
						"description": "Skip this much of the recording, e.g. \"9s\"",
					},
					"sort": map[string]interface{}{
						"type":        "boolean",
						"description": "Order rows by ranking instead of first appearance",
						"default":     false,
					},
				},
				"required": []string{"path"},
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
