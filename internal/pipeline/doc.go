// Package pipeline runs a whole recording through row detection, OCR and
// consensus.
//
// Frames are decoded by a video.Decoder and handed to a pool of workers. Each
// worker owns its own OCR engine. Per-frame results are put back in decoding
// order before voting, so the leaderboard does not depend on the worker count.
package pipeline
