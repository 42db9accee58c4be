// Package timing maps syllable tokens onto a playback schedule: one audio
// sample duration per non-whitespace token, short pauses at whitespace and a
// longer pause after sentence-ending punctuation.
package timing

import (
	"strings"

	"github.com/example/gibbercast/internal/syllable"
)

// Event records the half-open time interval during which the audio sample for
// a given token is playing. TokenIndex refers to the position in the token
// list the schedule was built from.
type Event struct {
	TokenIndex int     `json:"token_index"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
}

// Options holds the two pause durations, in seconds.
type Options struct {
	// ShortPause is inserted for each whitespace token.
	ShortPause float64
	// LongPause is added after a token ending in a sentence terminator.
	LongPause float64
}

// DefaultOptions returns the pause durations used by the voice renderer.
func DefaultOptions() Options {
	return Options{ShortPause: 0.05, LongPause: 0.6}
}

// DurationSource supplies one audio sample duration per non-whitespace token,
// in seconds. Durations must be positive; a zero or negative duration is a
// caller bug and is not defended against here.
type DurationSource interface {
	NextDuration() float64
}

// DurationFunc adapts a plain function to a DurationSource.
type DurationFunc func() float64

func (f DurationFunc) NextDuration() float64 { return f() }

// FixedDuration returns a source that yields the same duration for every token.
func FixedDuration(d float64) DurationSource {
	return DurationFunc(func() float64 { return d })
}

// Synchronize builds the timing table for a token sequence. A running clock
// starts at zero: whitespace tokens advance it by ShortPause without emitting
// an event; every other token draws one duration from src, emits an event
// spanning it, and adds LongPause afterwards when the token ends in a
// sentence terminator. An empty token list yields an empty table.
func Synchronize(tokens []string, src DurationSource, opts Options) []Event {
	events := make([]Event, 0, len(tokens))
	clock := 0.0

	for i, tok := range tokens {
		if syllable.IsWhitespace(tok) {
			clock += opts.ShortPause
			continue
		}

		d := src.NextDuration()
		events = append(events, Event{TokenIndex: i, Start: clock, End: clock + d})
		clock += d

		if EndsSentence(tok) {
			clock += opts.LongPause
		}
	}

	return events
}

// EndsSentence reports whether the token's trailing character is a sentence
// terminator.
func EndsSentence(tok string) bool {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return false
	}
	runes := []rune(tok)
	switch runes[len(runes)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
