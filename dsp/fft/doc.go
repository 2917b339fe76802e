// Package fft implements the centered FFT/iFFT pair used by the spectral
// freeze core: a scaled, power-of-two real transform whose bin grid is
// shifted by half a sample in both time and frequency, packed as N/2
// interleaved complex lines.
//
// The kernel is built from a generic power-of-two complex FFT (radix-2,
// iterative, in-place) plus a half-bin "chirp" pre-rotation on the way in
// and a matching post-rotation on the way out, rather than literally
// through a pair of DCT-IV calls. Both formulations compute the same
// centered DFT; see DESIGN.md for the derivation.
package fft
