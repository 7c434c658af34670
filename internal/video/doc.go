// Package video turns recordings into a stream of decoded frames.
//
// A Decoder calls a FrameFunc once per frame, in presentation order, starting
// at a configurable offset into the recording. Three backends exist:
//
//   - FFmpeg extracts PNG frames into a temporary directory with the ffmpeg
//     binary and streams them back in name order.
//   - Directory reads frames that were extracted ahead of time.
//   - Capture reads frames through OpenCV. It is only available in binaries
//     built with the gocv tag.
package video
