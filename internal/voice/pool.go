// Package voice renders gibberish voice tracks by concatenating randomly
// chosen prerecorded clips, one per syllable token.
package voice

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/gibbercast/internal/audio"
)

// ErrNoClips is returned when the clips directory holds no usable WAV files.
// The renderer cannot proceed without at least one playable sample.
var ErrNoClips = errors.New("no voice clips found")

// Clip is one prerecorded voice sample.
type Clip struct {
	Name       string
	Samples    []float32
	SampleRate int
}

// Duration reports the clip's playback time in seconds.
func (c Clip) Duration() float64 {
	return audio.Duration(len(c.Samples), c.SampleRate)
}

// Pool holds the decoded voice clips. All clips share one sample rate;
// mixed-format directories are rejected at load. The pool is read-only after
// construction.
type Pool struct {
	clips      []Clip
	sampleRate int
}

// LoadPool reads every .wav file in dir into memory. Clips are ordered by
// filename so pool contents are stable across runs.
func LoadPool(dir string) (*Pool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read clips directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".wav") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var clips []Clip
	rate := 0
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read clip %q: %w", name, err)
		}
		samples, sr, err := audio.DecodeWAV(data)
		if err != nil {
			return nil, fmt.Errorf("decode clip %q: %w", name, err)
		}
		if len(samples) == 0 {
			return nil, fmt.Errorf("clip %q contains no samples", name)
		}
		if rate == 0 {
			rate = sr
		} else if sr != rate {
			return nil, fmt.Errorf("clip %q has sample rate %d, want %d: all clips must share one format", name, sr, rate)
		}
		clips = append(clips, Clip{Name: name, Samples: samples, SampleRate: sr})
	}

	if len(clips) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoClips, dir)
	}

	return &Pool{clips: clips, sampleRate: rate}, nil
}

// SampleRate reports the shared sample rate of all clips in the pool.
func (p *Pool) SampleRate() int { return p.sampleRate }

// Len reports the number of clips.
func (p *Pool) Len() int { return len(p.clips) }

// Clips returns a copy of the clip list for inspection.
func (p *Pool) Clips() []Clip {
	return append([]Clip(nil), p.clips...)
}

// Pick returns a uniformly random clip.
func (p *Pool) Pick(rng *rand.Rand) Clip {
	return p.clips[rng.Intn(len(p.clips))]
}
