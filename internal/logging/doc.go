// Package logging builds the slog loggers used across rankboard.
//
// Loggers write to stderr by default in either a console (key=value) or JSON
// format, with lower-case level names and RFC3339 UTC timestamps under "ts".
// Each extraction run carries a run_id so interleaved output from parallel
// workers and MCP calls can be told apart.
package logging
