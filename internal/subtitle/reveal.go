// Package subtitle turns a voice track's timing table into progressive
// text-reveal frames for a renderer: each frame shows the text up to and
// including the syllable currently being spoken, and stays visible until the
// next syllable begins so inter-syllable silence never blanks the display.
package subtitle

import (
	"strings"
	"unicode"

	"github.com/example/gibbercast/internal/timing"
)

// minFrameDuration keeps zero-length frames renderable.
const minFrameDuration = 0.01

// Frame is one subtitle state: the visible text and when to show it.
type Frame struct {
	Text     string
	Start    float64
	Duration float64
}

// VisibleText returns the text revealed at event e: all tokens from the
// beginning through the event's token, whitespace and glued punctuation
// included, so word boundaries appear as syllables accumulate.
func VisibleText(tokens []string, e timing.Event) string {
	if e.TokenIndex < 0 || e.TokenIndex >= len(tokens) {
		return strings.Join(tokens, "")
	}
	return strings.Join(tokens[:e.TokenIndex+1], "")
}

// Frames builds the subtitle frames for a schedule. Events before the first
// letter-bearing token are dropped. Every frame lasts until the next event
// starts; the last frame lasts until totalDuration (the track end), with a
// small floor so no frame has zero length.
func Frames(tokens []string, events []timing.Event, totalDuration float64) []Frame {
	if len(events) == 0 {
		return nil
	}

	first := firstWordEvent(tokens, events)

	frames := make([]Frame, 0, len(events)-first)
	for i := first; i < len(events); i++ {
		ev := events[i]

		var dur float64
		if i < len(events)-1 {
			dur = events[i+1].Start - ev.Start
		} else {
			dur = totalDuration - ev.Start
		}
		if dur < minFrameDuration {
			dur = minFrameDuration
		}

		frames = append(frames, Frame{
			Text:     VisibleText(tokens, ev),
			Start:    ev.Start,
			Duration: dur,
		})
	}

	return frames
}

// firstWordEvent finds the first event whose token carries a letter, so
// leading bare punctuation does not flash on its own.
func firstWordEvent(tokens []string, events []timing.Event) int {
	for i, ev := range events {
		if ev.TokenIndex >= 0 && ev.TokenIndex < len(tokens) && hasLetter(tokens[ev.TokenIndex]) {
			return i
		}
	}
	return 0
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
