// Package extract reads leaderboard rows out of frames.
//
// For every row bound it crops six cells (ranking, nickname, points,
// wins/losses, win percent, rating), converts them to grayscale and hands them
// to an ocr.Recognizer in single-line mode with a per-column character
// whitelist. Raw text is then normalized: surrounding whitespace is trimmed,
// blank cells become unread, and numeric columns with malformed punctuation are
// rejected. Rows whose ranking cell is blank are dropped.
package extract
