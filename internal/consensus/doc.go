// Package consensus merges per-frame leaderboard readings into one leaderboard.
//
// The same row is usually visible in many frames and OCR misreads some of
// them. Build groups readings by ranking key and picks each field by plurality
// vote over accepted values, so a misread in a minority of frames is outvoted.
// Rejected and unread values never vote.
package consensus
