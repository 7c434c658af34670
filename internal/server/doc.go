// Package server implements an MCP (Model Context Protocol) server that exposes
// leaderboard extraction as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Logs never go to stdout, which carries the protocol stream.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Row Detection:
//   - leaderboard_scan_frame: Classify the probe line and list row bounds
//   - leaderboard_sample_color: Color and row type at one pixel
//   - leaderboard_draw_bounds: Render the debug overlay
//
// OCR:
//   - leaderboard_crop_cell: Return one cell as it is handed to OCR
//   - leaderboard_extract_frame: Read every row of one frame
//   - leaderboard_extract_video: Consensus leaderboard for a whole recording
//
// # Image Caching
//
// Frames are cached by path and reused across tool calls for the lifetime of
// the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
