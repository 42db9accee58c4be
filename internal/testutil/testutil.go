// Package testutil provides WAV fixture helpers for clip pool and renderer
// tests: small in-memory mono 16-bit clips with a recognizable waveform.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/gibbercast/internal/audio"
)

// SineClipBytes builds a WAV byte slice holding numSamples of a 440 Hz sine
// at the given sample rate.
func SineClipBytes(tb testing.TB, numSamples, sampleRate int) []byte {
	tb.Helper()

	samples := make([]float32, numSamples)
	for i := range samples {
		samples[i] = 0.5 * float32(math.Sin(2*math.Pi*440*float64(i)/float64(sampleRate)))
	}

	data, err := audio.EncodeWAV(samples, sampleRate)
	if err != nil {
		tb.Fatalf("encode fixture WAV: %v", err)
	}
	return data
}

// WriteClip writes a sine fixture clip into dir under the given name and
// returns its path.
func WriteClip(tb testing.TB, dir, name string, numSamples, sampleRate int) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, SineClipBytes(tb, numSamples, sampleRate), 0o644); err != nil {
		tb.Fatalf("write fixture clip %q: %v", path, err)
	}
	return path
}
