package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ironsheep/rankboard-ocr/internal/config"
	"github.com/ironsheep/rankboard-ocr/internal/consensus"
	"github.com/ironsheep/rankboard-ocr/internal/extract"
	"github.com/ironsheep/rankboard-ocr/internal/imaging"
	"github.com/ironsheep/rankboard-ocr/internal/pipeline"
	"github.com/ironsheep/rankboard-ocr/internal/rowscan"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "leaderboard_scan_frame").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", slog.String("tool", params.Name), slog.String("error", err.Error()))
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Row Detection
	case "leaderboard_scan_frame":
		return s.handleScanFrame(args)
	case "leaderboard_sample_color":
		return s.handleSampleColor(args)
	case "leaderboard_draw_bounds":
		return s.handleDrawBounds(args)

	// OCR
	case "leaderboard_crop_cell":
		return s.handleCropCell(args)
	case "leaderboard_extract_frame":
		return s.handleExtractFrame(ctx, args)
	case "leaderboard_extract_video":
		return s.handleExtractVideo(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Row Detection Handlers ===

type scanFrameArgs struct {
	Path         string `json:"path"`
	ProbeX       *int   `json:"probe_x"`
	YStart       *int   `json:"y_start"`
	YEnd         *int   `json:"y_end"`
	MinRowHeight *int   `json:"min_row_height"`
}

type scanFrameResult struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Probe  rowscan.Probe   `json:"probe"`
	All    []rowscan.Bound `json:"all"`
	Rows   []rowscan.Bound `json:"rows"`
}

// scanner returns the configured scanner with any overrides from a applied.
func (s *Server) scanner(a scanFrameArgs) *rowscan.Scanner {
	probe := rowscan.Probe{X: s.cfg.Probe.X, YStart: s.cfg.Probe.YStart, YEnd: s.cfg.Probe.YEnd}
	minHeight := s.cfg.Probe.MinRowHeight
	if a.ProbeX != nil {
		probe.X = *a.ProbeX
	}
	if a.YStart != nil {
		probe.YStart = *a.YStart
	}
	if a.YEnd != nil {
		probe.YEnd = *a.YEnd
	}
	if a.MinRowHeight != nil {
		minHeight = *a.MinRowHeight
	}
	return rowscan.NewScanner(probe, minHeight)
}

func (s *Server) handleScanFrame(args json.RawMessage) (interface{}, error) {
	var a scanFrameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	sc := s.scanner(a)
	scan, err := sc.Scan(img)
	if err != nil {
		return nil, err
	}
	return &scanFrameResult{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Probe:  sc.Probe,
		All:    scan.All,
		Rows:   scan.Rows,
	}, nil
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type sampleColorResult struct {
	imaging.RGBColor
	Hex  string          `json:"hex"`
	Sum  int             `json:"sum"`
	Type rowscan.RowType `json:"type"`
}

func (s *Server) handleSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.SampleColor(img, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &sampleColorResult{RGBColor: c, Hex: c.Hex(), Sum: c.Sum(), Type: rowscan.Classify(c)}, nil
}

type drawBoundsArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

type drawBoundsResult struct {
	Bounds []rowscan.Bound       `json:"bounds"`
	Output string                `json:"output,omitempty"`
	Image  *imaging.EncodedImage `json:"image,omitempty"`
}

func (s *Server) handleDrawBounds(args json.RawMessage) (interface{}, error) {
	var a drawBoundsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	scan, err := s.scanner(scanFrameArgs{}).Scan(img)
	if err != nil {
		return nil, err
	}

	overlay := rowscan.DrawRowBounds(img, scan.All, s.cfg.Debug.OverlayX1, s.cfg.Debug.OverlayX2)
	result := &drawBoundsResult{Bounds: scan.All}
	if a.Output != "" {
		if err := imaging.SaveImage(overlay, a.Output); err != nil {
			return nil, err
		}
		result.Output = a.Output
		return result, nil
	}
	result.Image, err = imaging.EncodeBase64(overlay)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// === OCR Handlers ===

type cropCellArgs struct {
	Path   string  `json:"path"`
	Column string  `json:"column"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Scale  float64 `json:"scale"`
}

func (s *Server) handleCropCell(args json.RawMessage) (interface{}, error) {
	var a cropCellArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	col, ok := extract.ColumnsFromConfig(s.cfg.Columns).Lookup(a.Column)
	if !ok {
		return nil, fmt.Errorf("unknown column %q", a.Column)
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	cell, err := imaging.CropCell(img, col.Start, a.Start, col.End, a.End)
	if err != nil {
		return nil, err
	}
	return imaging.EncodeBase64(imaging.Scale(cell, a.Scale))
}

type extractFrameArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleExtractFrame(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a extractFrameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	rec, err := s.newRecognizer()
	if err != nil {
		return nil, fmt.Errorf("create recognizer: %w", err)
	}
	if c, ok := rec.(io.Closer); ok {
		defer c.Close()
	}

	proc := &extract.FrameProcessor{
		Scanner:   s.scanner(scanFrameArgs{}),
		Extractor: extract.New(extract.ColumnsFromConfig(s.cfg.Columns), rec, s.logger),
	}
	return proc.Process(ctx, 0, img)
}

type extractVideoArgs struct {
	Path        string `json:"path"`
	Backend     string `json:"backend"`
	Workers     int    `json:"workers"`
	StartOffset string `json:"start_offset"`
	Sort        bool   `json:"sort"`
}

func (s *Server) handleExtractVideo(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a extractVideoArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	info, err := os.Stat(a.Path)
	if err != nil {
		return nil, err
	}

	cfg := *s.cfg
	switch {
	case a.Backend != "":
		cfg.Video.Backend = a.Backend
	case info.IsDir():
		cfg.Video.Backend = config.BackendDirectory
	}
	if a.Workers > 0 {
		cfg.Extract.Workers = a.Workers
	}
	if a.StartOffset != "" {
		cfg.Video.StartOffset = a.StartOffset
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dec, err := s.newDecoder(cfg.Video, s.logger)
	if err != nil {
		return nil, err
	}
	cfg.Debug.Dir = ""

	res, err := pipeline.Run(ctx, dec, a.Path, pipeline.OptionsFromConfig(&cfg, s.newRecognizer, s.logger))
	if err != nil {
		return nil, err
	}
	if a.Sort {
		consensus.SortByRank(res.Rows)
	}
	return res, nil
}
