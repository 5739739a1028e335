package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"textsum/internal/domain"
	"textsum/internal/port"
)

// SummaryCache is an LRU cache of analyses with a TTL. Cached analyses are
// shared between callers and must not be modified. Invalidate bumps a
// generation counter so entries cached before the call are never served.
type SummaryCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   []string
	maxSize int
	ttl     time.Duration
	gen     uint64
	now     func() time.Time
	hits    uint64
	misses  uint64
}

type cacheEntry struct {
	analysis  *domain.Analysis
	timestamp time.Time
	gen       uint64
}

// NewSummaryCache creates a cache holding at most maxSize entries for ttl.
// Non-positive values fall back to 256 entries and ten minutes.
func NewSummaryCache(maxSize int, ttl time.Duration) *SummaryCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SummaryCache{
		entries: make(map[string]*cacheEntry),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// cacheKey hashes the sentence count together with the text.
func cacheKey(text string, n int) string {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	h.Write(buf[:])
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// Get returns the cached analysis for text and n, dropping it when expired
// or invalidated.
func (c *SummaryCache) Get(text string, n int) (*domain.Analysis, bool) {
	key := cacheKey(text, n)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.misses++
		return nil, false
	}

	if c.now().Sub(entry.timestamp) > c.ttl || entry.gen != c.gen {
		delete(c.entries, key)
		c.removeFromOrder(key)
		c.misses++
		return nil, false
	}

	c.moveToEnd(key)
	c.hits++
	return entry.analysis, true
}

// Put stores analysis for text and n, evicting the least recently used
// entry when full.
func (c *SummaryCache) Put(text string, n int, analysis *domain.Analysis) {
	key := cacheKey(text, n)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &cacheEntry{
		analysis:  analysis,
		timestamp: c.now(),
		gen:       c.gen,
	}

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry
	c.order = append(c.order, key)
}

// Invalidate discards every entry cached so far.
func (c *SummaryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheEntry)
	c.order = c.order[:0]
	c.gen++
}

// Size returns the number of entries held.
func (c *SummaryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts since creation.
func (c *SummaryCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

func (c *SummaryCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *SummaryCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *SummaryCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// CachedSummarizer serves repeated (text, n) pairs from a SummaryCache.
// Errors are never cached.
type CachedSummarizer struct {
	analyzer port.Analyzer
	cache    *SummaryCache
}

// NewCachedSummarizer wraps analyzer with cache.
func NewCachedSummarizer(analyzer port.Analyzer, cache *SummaryCache) *CachedSummarizer {
	return &CachedSummarizer{
		analyzer: analyzer,
		cache:    cache,
	}
}

// Summarize returns the summary part of Analyze.
func (s *CachedSummarizer) Summarize(text string, n int) (string, error) {
	analysis, err := s.Analyze(text, n)
	if err != nil {
		return "", err
	}
	return analysis.Summary, nil
}

// Analyze serves text and n from the cache, falling back to the wrapped
// analyzer.
func (s *CachedSummarizer) Analyze(text string, n int) (*domain.Analysis, error) {
	if analysis, hit := s.cache.Get(text, n); hit {
		return analysis, nil
	}

	analysis, err := s.analyzer.Analyze(text, n)
	if err != nil {
		return nil, err
	}

	s.cache.Put(text, n, analysis)
	return analysis, nil
}
