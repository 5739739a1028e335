package cache

import (
	"errors"
	"testing"
	"time"

	"textsum/internal/domain"
)

func TestSummaryCache_GetPut(t *testing.T) {
	c := NewSummaryCache(10, time.Minute)

	if _, ok := c.Get("text", 2); ok {
		t.Fatal("expected miss on empty cache")
	}

	want := &domain.Analysis{Summary: "summary"}
	c.Put("text", 2, want)
	got, ok := c.Get("text", 2)
	if !ok || got != want {
		t.Errorf("expected hit with %v, got %v (hit=%v)", want, got, ok)
	}

	if _, ok := c.Get("text", 3); ok {
		t.Error("expected a different sentence count to miss")
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 2 {
		t.Errorf("expected 1 hit and 2 misses, got %d/%d", hits, misses)
	}
}

func TestSummaryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewSummaryCache(2, time.Minute)

	c.Put("a", 1, &domain.Analysis{Summary: "A"})
	c.Put("b", 1, &domain.Analysis{Summary: "B"})
	c.Get("a", 1)
	c.Put("c", 1, &domain.Analysis{Summary: "C"})

	if _, ok := c.Get("b", 1); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a", 1); !ok {
		t.Error("expected a to survive after recent use")
	}
	if c.Size() != 2 {
		t.Errorf("expected size 2, got %d", c.Size())
	}
}

func TestSummaryCache_TTL(t *testing.T) {
	c := NewSummaryCache(10, time.Second)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	c.Put("text", 1, &domain.Analysis{Summary: "summary"})
	now = now.Add(2 * time.Second)

	if _, ok := c.Get("text", 1); ok {
		t.Error("expected expired entry to miss")
	}
	if c.Size() != 0 {
		t.Errorf("expected expired entry to be dropped, size=%d", c.Size())
	}
}

func TestSummaryCache_Invalidate(t *testing.T) {
	c := NewSummaryCache(10, time.Minute)
	c.Put("text", 1, &domain.Analysis{Summary: "summary"})

	c.Invalidate()

	if _, ok := c.Get("text", 1); ok {
		t.Error("expected miss after invalidate")
	}
}

type countingSummarizer struct {
	calls int
	err   error
}

func (s *countingSummarizer) Summarize(text string, n int) (string, error) {
	a, err := s.Analyze(text, n)
	if err != nil {
		return "", err
	}
	return a.Summary, nil
}

func (s *countingSummarizer) Analyze(text string, n int) (*domain.Analysis, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Analysis{Summary: text}, nil
}

func TestCachedSummarizer(t *testing.T) {
	inner := &countingSummarizer{}
	s := NewCachedSummarizer(inner, NewSummaryCache(10, time.Minute))

	for i := 0; i < 3; i++ {
		got, err := s.Summarize("Hello there.", 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != "Hello there." {
			t.Errorf("unexpected summary %q", got)
		}
	}
	if _, err := s.Analyze("Hello there.", 1); err != nil {
		t.Fatal(err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 underlying call, got %d", inner.calls)
	}
}

func TestCachedSummarizer_ErrorsNotCached(t *testing.T) {
	inner := &countingSummarizer{err: errors.New("boom")}
	s := NewCachedSummarizer(inner, NewSummaryCache(10, time.Minute))

	s.Summarize("x", 0)
	s.Summarize("x", 0)

	if inner.calls != 2 {
		t.Errorf("expected errors to bypass the cache, got %d calls", inner.calls)
	}
}
