package port

// WordTokenizer splits text into word-level tokens.
type WordTokenizer interface {
	Tokenize(text string) []string
}

// Segmenter splits text into ordered sentences.
type Segmenter interface {
	Segment(text string) []string
}

// StopwordSet reports whether a lowercase word is a stopword.
type StopwordSet interface {
	Contains(word string) bool
}
