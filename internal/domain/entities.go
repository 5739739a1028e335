package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNotFound            = errors.New("not found")
)

// WordFrequencyTable maps a lowercase non-stopword to its count across a document.
type WordFrequencyTable map[string]int

// SentenceScoreTable holds one entry per distinct sentence, in order of first occurrence.
type SentenceScoreTable struct {
	Entries []ScoredSentence
	index   map[string]int
}

// NewSentenceScoreTable creates an empty score table.
func NewSentenceScoreTable() *SentenceScoreTable {
	return &SentenceScoreTable{index: make(map[string]int)}
}

// Add accumulates score for sentence. A sentence seen for the first time is
// recorded at position pos; repeated sentences keep their first position.
func (t *SentenceScoreTable) Add(sentence string, pos, score int) {
	if i, ok := t.index[sentence]; ok {
		t.Entries[i].Score += score
		return
	}
	t.index[sentence] = len(t.Entries)
	t.Entries = append(t.Entries, ScoredSentence{Text: sentence, Score: score, Position: pos})
}

// Score returns the accumulated score for sentence.
func (t *SentenceScoreTable) Score(sentence string) (int, bool) {
	i, ok := t.index[sentence]
	if !ok {
		return 0, false
	}
	return t.Entries[i].Score, true
}

// Len returns the number of distinct sentences.
func (t *SentenceScoreTable) Len() int {
	return len(t.Entries)
}

type ScoredSentence struct {
	Text     string `json:"text"`
	Score    int    `json:"score"`
	Position int    `json:"position"`
}

// Analysis is everything one summarization call computed.
type Analysis struct {
	Sentences   []string           `json:"sentences"`
	Frequencies WordFrequencyTable `json:"frequencies"`
	Scores      []ScoredSentence   `json:"scores"`
	Selected    []ScoredSentence   `json:"selected"`
	Summary     string             `json:"summary"`
}

// SummaryRecord is a stored batch result for one file.
type SummaryRecord struct {
	ID          string           `json:"id"`
	Path        string           `json:"path"`
	ModTime     time.Time        `json:"mod_time"`
	ContentHash string           `json:"content_hash"`
	Sentences   int              `json:"sentences"`
	Summary     string           `json:"summary"`
	Selected    []ScoredSentence `json:"selected,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
