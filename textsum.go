// Package textsum produces extractive summaries of English prose by scoring
// each sentence with the corpus frequency of its non-stopword words.
package textsum

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"textsum/config"
	"textsum/internal/adapter/analyzer"
	"textsum/internal/adapter/cache"
	"textsum/internal/domain"
	"textsum/internal/port"
	"textsum/internal/usecase"
)

// Config is the textsum configuration.
type Config = config.Config

// Analysis holds the intermediate tables behind a summary.
type Analysis = domain.Analysis

// Errors returned by the summarizer.
var (
	ErrInvalidArgument     = domain.ErrInvalidArgument
	ErrUnsupportedLanguage = domain.ErrUnsupportedLanguage
)

// SampleText is a short paragraph used by demos and smoke tests.
const SampleText = `Natural language processing (NLP) is a field of artificial intelligence that focuses on the interaction between computers and humans through natural language.
It enables machines to understand, interpret, and generate human language in a way that is both meaningful and useful.
Some common applications of NLP include chatbots, sentiment analysis, and language translation.
By leveraging NLP techniques, businesses can automate tasks such as summarizing long documents and extracting key information.`

// Options configures New.
type Options struct {
	Config *Config     // If nil, config.DefaultConfig() is used.
	Logger *zap.Logger // If nil, logging is disabled.
}

// Summarizer is a ready to use summarizer. It is safe for concurrent use.
type Summarizer struct {
	analyzer port.Analyzer
	cache    *cache.SummaryCache
}

// New wires a Summarizer from the summarize and cache sections of the
// configuration.
func New(opts Options) (*Summarizer, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seg, err := analyzer.NewPunktSegmenter()
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence model: %w", err)
	}

	stops, err := analyzer.Stopwords(cfg.Summarize.Language)
	if err != nil {
		return nil, err
	}
	if len(cfg.Summarize.ExtraStopwords) > 0 {
		stops = stops.WithExtra(cfg.Summarize.ExtraStopwords...)
	}

	var a port.Analyzer = usecase.NewSummarizeUseCase(seg, analyzer.NewWordTokenizer(), stops, logger)

	s := &Summarizer{analyzer: a}
	if cfg.Cache.Enabled {
		s.cache = cache.NewSummaryCache(cfg.Cache.MaxEntries, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		s.analyzer = cache.NewCachedSummarizer(a, s.cache)
	}

	logger.Debug("summarizer ready",
		zap.String("language", cfg.Summarize.Language),
		zap.Int("stopwords", stops.Len()),
		zap.Bool("cache", cfg.Cache.Enabled),
	)
	return s, nil
}

// Summarize returns the n highest scoring sentences of text, highest score
// first, joined by a single space. Ties go to the sentence that appears
// first. n must be at least 1.
func (s *Summarizer) Summarize(text string, n int) (string, error) {
	return s.analyzer.Summarize(text, n)
}

// Analyze is like Summarize but also returns the sentence list, the word
// frequency table and every sentence score.
func (s *Summarizer) Analyze(text string, n int) (*Analysis, error) {
	return s.analyzer.Analyze(text, n)
}

// CacheStats reports cache hits and misses. Both are zero when the cache is
// disabled.
func (s *Summarizer) CacheStats() (hits, misses uint64) {
	if s.cache == nil {
		return 0, 0
	}
	return s.cache.Stats()
}

var (
	defaultOnce       sync.Once
	defaultSummarizer *Summarizer
	defaultErr        error
)

// Summarize summarizes text with the default configuration.
func Summarize(text string, n int) (string, error) {
	defaultOnce.Do(func() {
		defaultSummarizer, defaultErr = New(Options{})
	})
	if defaultErr != nil {
		return "", defaultErr
	}
	return defaultSummarizer.Summarize(text, n)
}
