// Command rankboard reads the ranking screens of recorded game sessions and
// prints the leaderboard they show.
//
// Usage:
//
//	rankboard extract session.mp4
//	rankboard extract --frames-dir ./frames --json
//	rankboard scan frame.png --overlay bounds.png
//	rankboard serve
//	rankboard config init
//
// Configuration is read from --config, ~/.config/rankboard/config.toml or
// ./rankboard.toml, in that order. Logs go to stderr.
package main
