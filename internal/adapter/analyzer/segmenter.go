package analyzer

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var (
	punktOnce sync.Once
	punkt     *sentences.DefaultSentenceTokenizer
	punktErr  error
)

// PunktSegmenter splits text into sentences with the pre-trained English
// Punkt model. The model is loaded once per process.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter returns a segmenter backed by the shared Punkt model.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	punktOnce.Do(func() {
		punkt, punktErr = english.NewSentenceTokenizer(nil)
	})
	if punktErr != nil {
		return nil, fmt.Errorf("failed to load punkt model: %w", punktErr)
	}
	return &PunktSegmenter{tokenizer: punkt}, nil
}

// Segment returns the sentences of text in document order, trimmed of
// surrounding whitespace. Blank input yields no sentences.
func (s *PunktSegmenter) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, sent := range s.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(sent.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
