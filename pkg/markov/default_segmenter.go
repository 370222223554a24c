package markov

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	defaultVowels = "aeiou"
	asciiLetters  = "abcdefghijklmnopqrstuvwxyz"
)

// rule pairs a category with an anchored pattern.
type rule struct {
	category Category
	pattern  *regexp.Regexp
}

// DefaultSegmenter is the default implementation of the Segmenter interface.
// It scans a word left to right and, at each position, emits the longest run
// matched by the first of its rules that matches there. Its behavior can be
// customized with functional options.
type DefaultSegmenter struct {
	vowels string
	rules  []rule
}

// SegmenterOption is a function that configures a DefaultSegmenter.
type SegmenterOption func(*DefaultSegmenter)

// WithVowels sets the ASCII letters treated as vowels, in either case. Every
// other ASCII letter is a consonant.
// Default: "aeiou"
func WithVowels(vowels string) SegmenterOption {
	return func(s *DefaultSegmenter) {
		s.vowels = strings.ToLower(vowels)
	}
}

// NewDefaultSegmenter creates a new segmenter with default settings, which
// can be overridden by providing one or more SegmenterOption functions.
func NewDefaultSegmenter(opts ...SegmenterOption) *DefaultSegmenter {
	s := &DefaultSegmenter{vowels: defaultVowels}
	for _, opt := range opts {
		opt(s)
	}

	var vowels, consonants strings.Builder
	for _, r := range asciiLetters {
		if strings.ContainsRune(s.vowels, r) {
			vowels.WriteRune(r)
		} else {
			consonants.WriteRune(r)
		}
	}

	s.rules = []rule{
		{Vowel, letterClass(vowels.String())},
		{Consonant, letterClass(consonants.String())},
		{Punctuation, regexp.MustCompile(`^[-']`)},
		// Unicode whitespace, including the information separators
		// U+001C..U+001F and NEL.
		{Whitespace, regexp.MustCompile(`^[\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}]+`)},
		// Runs to the end of the line, like the other rules it never
		// crosses a newline.
		{Other, regexp.MustCompile(`^.+`)},
	}
	return s
}

// letterClass builds an anchored, case-insensitive run pattern for letters.
// An empty set produces a pattern that never matches.
func letterClass(letters string) *regexp.Regexp {
	if letters == "" {
		return regexp.MustCompile(`^[^\x00-\x{10FFFF}]`)
	}
	return regexp.MustCompile(`^[` + letters + strings.ToUpper(letters) + `]+`)
}

// Split returns the piece values of word in scan order.
func (s *DefaultSegmenter) Split(word string) []string {
	var values []string
	s.scan(word, func(_ Category, value string) {
		values = append(values, value)
	})
	return values
}

// Tokenize returns the pieces of word in scan order, with their categories.
func (s *DefaultSegmenter) Tokenize(word string) []Piece {
	var pieces []Piece
	s.scan(word, func(c Category, value string) {
		pieces = append(pieces, Piece{Category: c, Value: value})
	})
	return pieces
}

func (s *DefaultSegmenter) scan(word string, emit func(Category, string)) {
	for pos := 0; pos < len(word); {
		rest := word[pos:]
		category, n := Other, 0
		for _, r := range s.rules {
			if loc := r.pattern.FindStringIndex(rest); loc != nil && loc[1] > 0 {
				category, n = r.category, loc[1]
				break
			}
		}
		if n == 0 {
			// Nothing matched, consume one rune so the scan always advances.
			_, n = utf8.DecodeRuneInString(rest)
		}
		emit(category, rest[:n])
		pos += n
	}
}
