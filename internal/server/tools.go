package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func gridProperties(props map[string]interface{}) map[string]interface{} {
	props["rows"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of rows (default 2)",
		"default":     2,
	}
	props["cols"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of columns (default 2)",
		"default":     2,
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_dimensions",
			Description: "Get the width, height and format of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_background_color",
			Description: "Estimate the background color of an image as the most frequent color along its borders.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"border_percent": map[string]interface{}{
						"type":        "number",
						"description": "Width of each sampled border band as a percentage of the image size (default 10)",
						"default":     10,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_split",
			Description: "Split an image into a grid of tiles saved as <name>_<index><ext>. Width must be divisible by cols and height by rows. Optionally pads the image to a square first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": gridProperties(map[string]interface{}{
					"path": pathProperty(),
					"square": map[string]interface{}{
						"type":        "boolean",
						"description": "Pad the image to a square using its background color before splitting",
						"default":     false,
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for the tiles (default: current directory)",
					},
					"pad": map[string]interface{}{
						"type":        "integer",
						"description": "Zero-pad width of tile indices (default 5, 0 disables)",
						"default":     5,
					},
					"border_percent": map[string]interface{}{
						"type":        "number",
						"description": "Border band used to estimate the square fill color (default 10)",
						"default":     10,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Explicit square fill color as #RRGGBB",
					},
				}),
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_merge",
			Description: "Merge tiles named <name>_<index><ext>, found next to the given path, back into one image saved at that path. Tile indices must run from 0 without gaps.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": gridProperties(map[string]interface{}{
					"path": pathProperty(),
					"cleanup": map[string]interface{}{
						"type":        "boolean",
						"description": "Delete the tiles after a successful merge",
						"default":     false,
					},
				}),
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return reply(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
