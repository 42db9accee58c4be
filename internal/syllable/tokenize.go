package syllable

import "unicode"

// Tokenize splits arbitrary text into an ordered token sequence: whitespace
// runs (one token per whitespace character), vowel-anchored syllable chunks,
// and bare punctuation. Punctuation following a word glues onto the word's
// last chunk; punctuation with no preceding word glues onto the previous
// non-whitespace token, or becomes a standalone token when none exists.
// Joining the tokens reproduces the input exactly.
func Tokenize(text string) []string {
	var tokens []string
	var word []rune

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if len(word) > 0 {
				tokens = append(tokens, SplitWord(string(word))...)
				word = word[:0]
			}
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r):
			word = append(word, r)
		default:
			if len(word) > 0 {
				chunks := SplitWord(string(word))
				word = word[:0]
				if len(chunks) > 0 {
					chunks[len(chunks)-1] += string(r)
					tokens = append(tokens, chunks...)
				} else {
					tokens = append(tokens, string(r))
				}
			} else if len(tokens) > 0 && !IsWhitespace(tokens[len(tokens)-1]) {
				tokens[len(tokens)-1] += string(r)
			} else {
				tokens = append(tokens, string(r))
			}
		}
	}

	if len(word) > 0 {
		tokens = append(tokens, SplitWord(string(word))...)
	}

	return tokens
}

// IsWhitespace reports whether tok is non-empty and consists entirely of
// whitespace characters.
func IsWhitespace(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
