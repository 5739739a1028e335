package port

import "textsum/internal/domain"

// Summarizer produces an extractive summary of text.
type Summarizer interface {
	// Summarize returns at most n sentences of text joined by a single space.
	Summarize(text string, n int) (string, error)
}

// Analyzer exposes the intermediate tables behind a summary.
type Analyzer interface {
	Summarizer

	Analyze(text string, n int) (*domain.Analysis, error)
}
