package voice

import (
	"math/rand"

	"github.com/example/gibbercast/internal/audio"
	"github.com/example/gibbercast/internal/syllable"
	"github.com/example/gibbercast/internal/timing"
)

// Options configures the renderer.
type Options struct {
	// Timing holds the pause durations inserted between samples.
	Timing timing.Options
	// SpeedJitter is the playback-speed spread per clip: each drawn clip is
	// resampled by a factor uniform in [1-SpeedJitter, 1+SpeedJitter].
	// Zero disables the jitter.
	SpeedJitter float64
}

// DefaultOptions returns the renderer settings used for production videos.
func DefaultOptions() Options {
	return Options{
		Timing:      timing.DefaultOptions(),
		SpeedJitter: 0.1,
	}
}

// Track is a rendered voice track together with the schedule that produced
// it. Joining Tokens reproduces the input text; Events index into Tokens.
type Track struct {
	Samples    []float32
	SampleRate int
	Tokens     []string
	Events     []timing.Event
}

// Duration reports the track's playback time in seconds.
func (t *Track) Duration() float64 {
	return audio.Duration(len(t.Samples), t.SampleRate)
}

// Sidecar returns the persistable timing record for the track.
func (t *Track) Sidecar() timing.Sidecar {
	return timing.Sidecar{Tokens: t.Tokens, Syllables: t.Events}
}

// Renderer turns text into a gibberish voice track: one random clip per
// syllable token, a short silence per whitespace token, and a longer silence
// after sentence-ending punctuation. Not safe for concurrent use; the rng is
// consumed in token scan order.
type Renderer struct {
	pool *Pool
	rng  *rand.Rand
	opts Options
}

// NewRenderer builds a renderer over a loaded clip pool. The rng drives both
// clip choice and speed jitter; seed it to make output deterministic.
func NewRenderer(pool *Pool, rng *rand.Rand, opts Options) *Renderer {
	return &Renderer{pool: pool, rng: rng, opts: opts}
}

// Render synthesizes the voice track for text. Empty text yields an empty
// track with no tokens and no events.
func (r *Renderer) Render(text string) *Track {
	tokens := syllable.Tokenize(text)
	rate := r.pool.SampleRate()

	// Draw one speed-perturbed clip per non-whitespace token while the
	// synchronizer walks the clock; the schedule then replays the drawn
	// durations exactly.
	var drawn [][]float32
	src := timing.DurationFunc(func() float64 {
		clip := r.pool.Pick(r.rng)
		samples := clip.Samples
		if r.opts.SpeedJitter > 0 {
			factor := 1 + r.opts.SpeedJitter*(2*r.rng.Float64()-1)
			samples = ResampleLinear(samples, factor)
		}
		drawn = append(drawn, samples)
		return audio.Duration(len(samples), rate)
	})
	events := timing.Synchronize(tokens, src, r.opts.Timing)

	// Assemble PCM in the same order the clock advanced.
	var out []float32
	next := 0
	for _, tok := range tokens {
		if syllable.IsWhitespace(tok) {
			out = append(out, audio.Silence(r.opts.Timing.ShortPause, rate)...)
			continue
		}
		out = append(out, drawn[next]...)
		next++
		if timing.EndsSentence(tok) {
			out = append(out, audio.Silence(r.opts.Timing.LongPause, rate)...)
		}
	}

	return &Track{Samples: out, SampleRate: rate, Tokens: tokens, Events: events}
}
