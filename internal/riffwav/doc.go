// Package riffwav reads and writes PCM WAVE files: a RIFF container walk
// over "fmt ", "data" and "smpl" chunks, sample-format conversion between
// PCM8/PCM16/PCM24/IEEE-float and the normalized float64 samples the
// freeze core operates on, and loop-point extraction/passthrough.
//
// It exists because no repo in the retrieval corpus implements RIFF/WAV
// I/O; it is grounded directly on the chunk-walk documented in
// MiniRIFF.h, rendered with encoding/binary rather than the original's
// callback-table API.
package riffwav
