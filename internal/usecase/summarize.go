package usecase

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"textsum/internal/adapter/scorer"
	"textsum/internal/domain"
	"textsum/internal/port"
)

// SummarizeUseCase extracts summaries by word-frequency sentence scoring.
// It holds no per-call state and is safe for concurrent use.
type SummarizeUseCase struct {
	segmenter port.Segmenter
	tokenizer scorer.AlphaTokenizer
	stopwords port.StopwordSet
	logger    *zap.Logger
}

// NewSummarizeUseCase creates a new summarize use case. A nil logger
// disables logging.
func NewSummarizeUseCase(
	segmenter port.Segmenter,
	tokenizer scorer.AlphaTokenizer,
	stopwords port.StopwordSet,
	logger *zap.Logger,
) *SummarizeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummarizeUseCase{
		segmenter: segmenter,
		tokenizer: tokenizer,
		stopwords: stopwords,
		logger:    logger,
	}
}

// Summarize returns the n highest scoring sentences of text joined by a
// single space, highest score first.
func (u *SummarizeUseCase) Summarize(text string, n int) (string, error) {
	analysis, err := u.Analyze(text, n)
	if err != nil {
		return "", err
	}
	return analysis.Summary, nil
}

// Analyze runs the summarization pipeline and returns every intermediate
// table along with the summary.
func (u *SummarizeUseCase) Analyze(text string, n int) (*domain.Analysis, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: sentence count must be at least 1, got %d", domain.ErrInvalidArgument, n)
	}

	sentences := u.segmenter.Segment(text)
	freq := scorer.BuildFrequencyTable(sentences, u.tokenizer, u.stopwords)
	table := scorer.BuildScoreTable(sentences, u.tokenizer, freq)
	selected := scorer.SelectTop(table, n)

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.Text
	}

	u.logger.Debug("summarized text",
		zap.Int("sentences", len(sentences)),
		zap.Int("distinct_words", len(freq)),
		zap.Int("requested", n),
		zap.Int("selected", len(selected)),
	)

	return &domain.Analysis{
		Sentences:   sentences,
		Frequencies: freq,
		Scores:      table.Entries,
		Selected:    selected,
		Summary:     strings.Join(parts, " "),
	}, nil
}
