// Command spectrice freezes a WAVE file's spectrum at a chosen point and
// writes out a version whose tail decays into a stationary, loopable
// texture.
//
// Usage:
//
//	spectrice [flags] in.wav out.wav
//
// Examples:
//
//	spectrice -freezepoint 88200 -freezexfade 22050 in.wav out.wav
//	spectrice -loops y -format PCM24 in.wav out.wav
//	spectrice -snapshot 44100 -snapshotgain -6dB -freezephase=false in.wav out.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/spectrice/dsp/buffer"
	"github.com/cwbudde/spectrice/dsp/core"
	"github.com/cwbudde/spectrice/dsp/window"
	"github.com/cwbudde/spectrice/internal/riffwav"
	"github.com/cwbudde/spectrice/spectrice"
)

const exitBadArgs = 1
const exitRuntimeFailure = -1

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("spectrice", flag.ContinueOnError)

	blockSize := fs.Int("blocksize", 2048, "STFT block size N (power of two)")
	nHops := fs.Int("nhops", 8, "analysis hops per block H (power of two)")
	windowName := fs.String("window", "hann", "analysis window: sine|hann|hamming|blackman|nuttall")
	freezeXfade := fs.Int("freezexfade", 0, "pre-freeze crossfade length in samples, rounded up to whole blocks")
	freezePoint := fs.Int("freezepoint", -1, "freeze point in samples; defaults to the input file's loop start, if any")
	freezeFactor := fs.Float64("freezefactor", 1, "freeze mix gate in [0,1]")
	noFreezeAmp := fs.Bool("nofreezeamp", false, "disable amplitude freezing")
	freezePhase := fs.Bool("freezephase", false, "enable phase-step freezing")
	snapshotFlag := fs.String("snapshot", "n", `snapshot window start in samples, or "n" for none`)
	snapshotGain := fs.String("snapshotgain", "linear:1", "snapshot gain: linear:G or XdB")
	formatFlag := fs.String("format", "default", "output format: default|PCM8|PCM16|PCM24|FLOAT32")
	loopsFlag := fs.String("loops", "y", "carry loop metadata forward: y|n")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectrice [flags] in.wav out.wav\n\n")
		fmt.Fprintf(os.Stderr, "Freezes a WAVE file's spectrum at a chosen point.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitBadArgs
	}

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "error: expected exactly two positional arguments: in.wav out.wav")
		fs.Usage()
		return exitBadArgs
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	winType, err := window.ParseType(*windowName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitBadArgs
	}

	gain, err := parseSnapshotGain(*snapshotGain)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitBadArgs
	}

	if *loopsFlag != "y" && *loopsFlag != "n" {
		fmt.Fprintf(os.Stderr, "error: -loops must be y or n: %q\n", *loopsFlag)
		return exitBadArgs
	}

	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitRuntimeFailure
	}
	defer in.Close()

	wav, err := riffwav.Read(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitRuntimeFailure
	}

	outFormat := wav.Format
	if *formatFlag != "default" {
		outFormat, err = riffwav.ParseFormat(*formatFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitBadArgs
		}
	}

	resolvedFreezePoint := *freezePoint
	if resolvedFreezePoint < 0 {
		if !wav.HasLoop {
			fmt.Fprintln(os.Stderr, "error: -freezepoint was not given and the input has no loop metadata to derive it from")
			return exitBadArgs
		}
		resolvedFreezePoint = wav.LoopStart
	}

	freezeStart := resolvedFreezePoint - roundUpToBlock(*freezeXfade, *blockSize)
	if freezeStart < *blockSize {
		freezeStart = *blockSize
	}
	if resolvedFreezePoint < *blockSize {
		resolvedFreezePoint = *blockSize
	}
	if freezeStart > resolvedFreezePoint {
		freezeStart = resolvedFreezePoint
	}

	cfg := spectrice.Config{
		NChan:        wav.NumChannels,
		BlockSize:    *blockSize,
		NHops:        *nHops,
		Window:       winType,
		FreezeStart:  freezeStart,
		FreezePoint:  resolvedFreezePoint,
		FreezeFactor: *freezeFactor,
		FreezeAmp:    !*noFreezeAmp,
		FreezePhase:  *freezePhase,
	}

	pool := buffer.NewPool()
	frameLen := cfg.BlockSize * cfg.NChan

	if len(wav.Samples) < frameLen {
		fmt.Fprintf(os.Stderr, "error: input has fewer than one block (%d frames) of audio\n", cfg.BlockSize)
		return exitBadArgs
	}

	var snapshot []float64
	if !*freezePhase {
		if snapOffset, ok, err := parseSnapshotOffset(*snapshotFlag); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitBadArgs
		} else if ok {
			snapBuf := pool.Get(frameLen)
			extractBlock(snapBuf.Samples(), wav.Samples, snapOffset, cfg.NChan)
			scaleInPlace(snapBuf.Samples(), gain)
			snapshot = append([]float64(nil), snapBuf.Samples()...)
			pool.Put(snapBuf)
		}
	}

	primingBuf := pool.Get(frameLen)
	extractBlock(primingBuf.Samples(), wav.Samples, 0, cfg.NChan)
	priming := append([]float64(nil), primingBuf.Samples()...)
	pool.Put(primingBuf)

	state, err := spectrice.New(cfg, priming, snapshot)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitBadArgs
	}
	defer state.Close()

	rest := wav.Samples[frameLen:]
	nBlocks := (len(rest) + frameLen - 1) / frameLen
	padded := make([]float64, nBlocks*frameLen)
	copy(padded, rest)

	output := make([]float64, len(padded))
	inBuf := pool.Get(frameLen)
	outBuf := pool.Get(frameLen)
	defer pool.Put(inBuf)
	defer pool.Put(outBuf)

	for b := 0; b < nBlocks; b++ {
		off := b * frameLen
		copy(inBuf.Samples(), padded[off:off+frameLen])
		if err := state.Process(outBuf.Samples(), inBuf.Samples()); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return exitRuntimeFailure
		}
		copy(output[off:off+frameLen], outBuf.Samples())
		reportProgress(b+1, nBlocks)
	}

	outWav := &riffwav.File{
		SampleRate:  wav.SampleRate,
		NumChannels: wav.NumChannels,
		Format:      outFormat,
		Samples:     output,
	}

	if *loopsFlag == "y" && wav.HasLoop {
		adjusted := wav.LoopStart - *blockSize
		if adjusted < 0 {
			adjusted = 0
		}
		outWav.HasLoop = true
		outWav.LoopStart = adjusted
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitRuntimeFailure
	}
	defer outFile.Close()

	if err := riffwav.Write(outFile, outWav); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitRuntimeFailure
	}

	return 0
}

// extractBlock copies one BlockSize-frame window starting at frameOffset
// (in source frame coordinates) into dst, zero-padding past the end of
// src (spec.md §6's priming/snapshot block extraction).
func extractBlock(dst, src []float64, frameOffset, nChan int) {
	start := frameOffset * nChan
	n := copy(dst, src[min(start, len(src)):])
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func roundUpToBlock(n, blockSize int) int {
	if blockSize <= 0 {
		return n
	}
	if n%blockSize == 0 {
		return n
	}
	return (n/blockSize + 1) * blockSize
}

// parseSnapshotOffset parses -snapshot's "n" (no snapshot) or a literal
// sample offset.
func parseSnapshotOffset(s string) (offset int, ok bool, err error) {
	if s == "n" || s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid -snapshot value %q: %w", s, err)
	}
	return v, true, nil
}

// parseSnapshotGain parses -snapshotgain's "linear:G" or "XdB" forms.
// The original tool compared a parsed gain against NAN with `==`, which
// is always false (spec.md §9's documented Open Question); here NaN is
// rejected explicitly via math.IsNaN.
func parseSnapshotGain(s string) (float64, error) {
	if rest, ok := strings.CutPrefix(s, "linear:"); ok {
		g, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid -snapshotgain value %q: %w", s, err)
		}
		if math.IsNaN(g) {
			return 0, fmt.Errorf("invalid -snapshotgain value %q: NaN", s)
		}
		return g, nil
	}

	if rest, ok := strings.CutSuffix(s, "dB"); ok {
		db, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid -snapshotgain value %q: %w", s, err)
		}
		if math.IsNaN(db) {
			return 0, fmt.Errorf("invalid -snapshotgain value %q: NaN", s)
		}
		return core.DBToLinear(db), nil
	}

	return 0, fmt.Errorf("invalid -snapshotgain value %q: want linear:G or XdB", s)
}

func scaleInPlace(buf []float64, gain float64) {
	if gain == 1 {
		return
	}
	for i := range buf {
		buf[i] *= gain
	}
}

// reportProgress writes a terse one-line progress indicator to stderr
// (spec.md §1 scopes progress reporting out of the core; the host still
// reports something for long files).
func reportProgress(done, total int) {
	if total == 0 {
		return
	}
	if done != total && done%64 != 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\rspectrice: block %d/%d", done, total)
	if done == total {
		fmt.Fprintln(os.Stderr)
	}
}
