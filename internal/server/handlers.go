package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/split-image/internal/imaging"
	"github.com/ironsheep/split-image/internal/splitter"
	"github.com/ironsheep/split-image/internal/tileset"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_split", "image_merge").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return reply(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the imaging or splitter package
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_background_color":
		return s.handleImageBackgroundColor(args)
	case "image_split":
		return s.handleImageSplit(args)
	case "image_merge":
		return s.handleImageMerge(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data is omitted from the response.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{JSONRPC: "2.0", ID: id, Error: e}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.decoder, a.Path)
}

type imageBackgroundColorArgs struct {
	Path          string   `json:"path"`
	BorderPercent *float64 `json:"border_percent"`
}

func (s *Server) handleImageBackgroundColor(args json.RawMessage) (interface{}, error) {
	var a imageBackgroundColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	pct := imaging.DefaultBorderPercent
	if a.BorderPercent != nil {
		pct = *a.BorderPercent
	}

	img, err := s.decoder.Open(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.BackgroundColor(img, pct)
	if err != nil {
		return nil, err
	}
	return imaging.NewColorResult(c), nil
}

type imageSplitArgs struct {
	Path          string   `json:"path"`
	Rows          int      `json:"rows"`
	Cols          int      `json:"cols"`
	Square        bool     `json:"square"`
	OutputDir     string   `json:"output_dir"`
	Pad           *int     `json:"pad"`
	BorderPercent *float64 `json:"border_percent"`
	Background    string   `json:"background"`
}

func (s *Server) handleImageSplit(args json.RawMessage) (interface{}, error) {
	var a imageSplitArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := s.options(a.Rows, a.Cols)
	opts.Square = a.Square
	opts.OutputDir = a.OutputDir
	if a.Pad != nil {
		opts.Pad = *a.Pad
	}
	if a.BorderPercent != nil {
		opts.BorderPercent = *a.BorderPercent
	}
	if a.Background != "" {
		bg, err := imaging.ParseHexColor(a.Background)
		if err != nil {
			return nil, err
		}
		opts.Background = &bg
	}

	return splitter.New(opts, nil).SplitFile(a.Path)
}

type imageMergeArgs struct {
	Path    string `json:"path"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Cleanup bool   `json:"cleanup"`
}

// MergeResult describes an image rebuilt from its tiles.
type MergeResult struct {
	Path   string   `json:"path"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  []string `json:"tiles"`
}

func (s *Server) handleImageMerge(args json.RawMessage) (interface{}, error) {
	var a imageMergeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	files, err := tileset.Discover(a.Path)
	if err != nil {
		return nil, err
	}
	if err := tileset.Validate(files); err != nil {
		return nil, err
	}

	opts := s.options(a.Rows, a.Cols)
	opts.Cleanup = a.Cleanup
	paths := tileset.Paths(files)
	if err := splitter.New(opts, nil).MergeFiles(paths, a.Path); err != nil {
		return nil, err
	}

	info, err := imaging.LoadImageInfo(s.decoder, a.Path)
	if err != nil {
		return nil, err
	}
	return &MergeResult{Path: a.Path, Width: info.Width, Height: info.Height, Tiles: paths}, nil
}

// options applies the default grid of 2x2 when rows or cols are omitted.
func (s *Server) options(rows, cols int) splitter.Options {
	opts := splitter.DefaultOptions()
	if rows != 0 {
		opts.Rows = rows
	}
	if cols != 0 {
		opts.Cols = cols
	}
	opts.LoadLargeImages = s.cfg.LoadLargeImages
	return opts
}
