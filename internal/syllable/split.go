// Package syllable splits text into syllable-like tokens for pacing a
// gibberish voice track. The splitter is a greedy vowel-anchored heuristic,
// not a phonetic transcriber: downstream timing depends on its exact
// behaviour, so it must not be made more linguistically correct.
package syllable

import "strings"

// vowels is the character class that anchors a chunk. Lowercase Latin
// accented vowels are included; accented uppercase is not.
const vowels = "aeiouáéíóúäëïöüAEIOU"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// SplitWord splits a run of letters into chunks that each contain at least
// one vowel. Scanning left to right, a chunk consumes letters until its first
// vowel, then absorbs following consonants. If the remaining suffix is
// entirely vowel-free, the suffix is absorbed whole so a word
// never ends in a vowel-less orphan chunk. A word with no vowels at all
// becomes a single chunk. Concatenating the chunks reproduces the input.
func SplitWord(word string) []string {
	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return nil
	}

	var chunks []string
	start, i := 0, 0
	for i < n {
		// Seek until the first vowel has been consumed.
		hasVowel := false
		for i < n {
			if isVowel(runes[i]) {
				hasVowel = true
			}
			i++
			if hasVowel {
				break
			}
		}

		// Absorb trailing consonants, but never strand a vowel-free tail.
		for i < n && !isVowel(runes[i]) {
			if !containsVowel(runes[i:]) {
				i = n
				break
			}
			i++
		}

		chunks = append(chunks, string(runes[start:i]))
		start = i
	}

	return chunks
}

func containsVowel(runes []rune) bool {
	for _, r := range runes {
		if isVowel(r) {
			return true
		}
	}
	return false
}
