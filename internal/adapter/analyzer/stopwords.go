package analyzer

import (
	"fmt"
	"strings"
	"sync"

	"textsum/internal/domain"
)

// StopwordSet is an immutable set of lowercase stopwords.
type StopwordSet struct {
	words map[string]struct{}
}

var (
	englishOnce sync.Once
	englishSet  *StopwordSet
)

// Stopwords returns the stopword set for language. Sets are built once per
// process and shared.
func Stopwords(language string) (*StopwordSet, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "english", "en", "":
		englishOnce.Do(func() {
			englishSet = newStopwordSet(englishStopwords)
		})
		return englishSet, nil
	default:
		return nil, fmt.Errorf("%w: stopwords for %q", domain.ErrUnsupportedLanguage, language)
	}
}

func newStopwordSet(words []string) *StopwordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return &StopwordSet{words: m}
}

// Contains reports whether word is a stopword. Lookups are case-sensitive.
func (s *StopwordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stopwords.
func (s *StopwordSet) Len() int {
	return len(s.words)
}

// WithExtra returns a copy of s that also holds extra, lowercased.
// The receiver is not modified.
func (s *StopwordSet) WithExtra(extra ...string) *StopwordSet {
	if len(extra) == 0 {
		return s
	}
	m := make(map[string]struct{}, len(s.words)+len(extra))
	for w := range s.words {
		m[w] = struct{}{}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}
	return &StopwordSet{words: m}
}

// englishStopwords is the NLTK English stopword list.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"you're", "you've", "you'll", "you'd", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "she's", "her",
	"hers", "herself", "it", "it's", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "that'll", "these", "those", "am", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
	"as", "until", "while", "of", "at", "by", "for", "with", "about",
	"against", "between", "into", "through", "during", "before", "after",
	"above", "below", "to", "from", "up", "down", "in", "out", "on", "off",
	"over", "under", "again", "further", "then", "once", "here", "there",
	"when", "where", "why", "how", "all", "any", "both", "each", "few",
	"more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will",
	"just", "don", "don't", "should", "should've", "now", "d", "ll", "m",
	"o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn",
	"hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn",
	"mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
	"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won",
	"won't", "wouldn", "wouldn't",
}
