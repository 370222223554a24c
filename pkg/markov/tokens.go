package markov

// Category labels the kind of characters a Piece is made of.
type Category string

// Categories are tried in this order at every scan position; the first one
// that matches wins.
const (
	Vowel       Category = "VOWEL"
	Consonant   Category = "CONSONANT"
	Punctuation Category = "PUNCTUATION"
	Whitespace  Category = "WHITESPACE"
	Other       Category = "OTHER"
)

// Piece is a contiguous run of characters that all belong to one Category.
type Piece struct {
	Category Category
	Value    string
}

// Segmenter is an interface that defines the contract for splitting a word
// into pieces. This allows the Builder to be independent of the specific
// segmentation strategy.
type Segmenter interface {
	// Split returns the piece values of word in order. Joining them must
	// reproduce word exactly.
	Split(word string) []string
}

var defaultSegmenter = NewDefaultSegmenter()

// Split splits word into runs of vowels, consonants, punctuation, whitespace
// and other characters using the default segmenter. The empty string yields
// an empty slice.
func Split(word string) []string {
	return defaultSegmenter.Split(word)
}

// Tokenize is like Split but also reports the Category of every piece. It is
// meant for inspection; the Builder only consumes piece values.
func Tokenize(word string) []Piece {
	return defaultSegmenter.Tokenize(word)
}
