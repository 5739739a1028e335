// Package scorer builds the word frequency and sentence score tables and
// selects the highest scoring sentences.
package scorer

import (
	"sort"
	"strings"

	"textsum/internal/domain"
	"textsum/internal/port"
)

// AlphaTokenizer is a word tokenizer that can also produce the
// letters-only, lowercased words used for frequency counting.
type AlphaTokenizer interface {
	port.WordTokenizer

	AlphaWords(text string) []string
}

// BuildFrequencyTable counts every non-stopword across sentences. Words come
// from the letters-only pass, so punctuation never reaches the table.
func BuildFrequencyTable(sentences []string, tok AlphaTokenizer, stops port.StopwordSet) domain.WordFrequencyTable {
	freq := make(domain.WordFrequencyTable)
	for _, sentence := range sentences {
		for _, word := range tok.AlphaWords(sentence) {
			if stops.Contains(word) {
				continue
			}
			freq[word]++
		}
	}
	return freq
}

// BuildScoreTable scores each sentence by summing the frequency of every
// token that appears in freq. Tokens come from the lowercased original
// sentence without letters-only stripping, so a token like "n't" or "etc."
// scores nothing even when its stripped form was counted.
//
// Sentences matching no counted word still get an entry with score 0, so
// asking for at least as many sentences as the text has returns all of them.
func BuildScoreTable(sentences []string, tok port.WordTokenizer, freq domain.WordFrequencyTable) *domain.SentenceScoreTable {
	table := domain.NewSentenceScoreTable()
	for pos, sentence := range sentences {
		score := 0
		for _, token := range tok.Tokenize(strings.ToLower(sentence)) {
			score += freq[token]
		}
		table.Add(sentence, pos, score)
	}
	return table
}

// SelectTop returns the n highest scoring sentences, highest first. Equal
// scores keep document order.
func SelectTop(table *domain.SentenceScoreTable, n int) []domain.ScoredSentence {
	ranked := Rank(table)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Rank returns every entry of table ordered by score, highest first. Equal
// scores keep document order.
func Rank(table *domain.SentenceScoreTable) []domain.ScoredSentence {
	ranked := make([]domain.ScoredSentence, len(table.Entries))
	copy(ranked, table.Entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
