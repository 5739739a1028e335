package usecase

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/adapter/analyzer"
	"textsum/internal/domain"
)

const sampleText = `Natural language processing (NLP) is a field of artificial intelligence that focuses on the interaction between computers and humans through natural language.
It enables machines to understand, interpret, and generate human language in a way that is both meaningful and useful.
Some common applications of NLP include chatbots, sentiment analysis, and language translation.
By leveraging NLP techniques, businesses can automate tasks such as summarizing long documents and extracting key information.`

const (
	sampleFirst  = "Natural language processing (NLP) is a field of artificial intelligence that focuses on the interaction between computers and humans through natural language."
	sampleSecond = "It enables machines to understand, interpret, and generate human language in a way that is both meaningful and useful."
	sampleThird  = "Some common applications of NLP include chatbots, sentiment analysis, and language translation."
	sampleFourth = "By leveraging NLP techniques, businesses can automate tasks such as summarizing long documents and extracting key information."
)

func newTestSummarizer(t *testing.T) *SummarizeUseCase {
	t.Helper()
	seg, err := analyzer.NewPunktSegmenter()
	require.NoError(t, err)
	stops, err := analyzer.Stopwords("english")
	require.NoError(t, err)
	return NewSummarizeUseCase(seg, analyzer.NewWordTokenizer(), stops, nil)
}

func TestSummarize_Sample(t *testing.T) {
	uc := newTestSummarizer(t)

	got, err := uc.Summarize(sampleText, 2)
	require.NoError(t, err)
	assert.Equal(t, sampleFirst+" "+sampleThird, got)
}

func TestAnalyze_Sample(t *testing.T) {
	uc := newTestSummarizer(t)

	analysis, err := uc.Analyze(sampleText, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{sampleFirst, sampleSecond, sampleThird, sampleFourth}, analysis.Sentences)
	assert.Equal(t, 4, analysis.Frequencies["language"])
	assert.Equal(t, 3, analysis.Frequencies["nlp"])
	assert.Equal(t, 2, analysis.Frequencies["natural"])
	assert.NotContains(t, analysis.Frequencies, "the")

	require.Len(t, analysis.Selected, 2)
	assert.Equal(t, 23, analysis.Selected[0].Score)
	assert.Equal(t, 14, analysis.Selected[1].Score)
	assert.Equal(t, 2, analysis.Selected[1].Position)
}

func TestSummarize_AllSentencesRanked(t *testing.T) {
	uc := newTestSummarizer(t)

	for _, n := range []int{4, 5, 100} {
		got, err := uc.Summarize(sampleText, n)
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{sampleFirst, sampleThird, sampleFourth, sampleSecond}, " "), got, "n=%d", n)
	}
}

func TestSummarize_InvalidArgument(t *testing.T) {
	uc := newTestSummarizer(t)

	for _, n := range []int{0, -1} {
		_, err := uc.Summarize(sampleText, n)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "n=%d", n)
	}

	_, err := uc.Summarize("", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSummarize_Empty(t *testing.T) {
	uc := newTestSummarizer(t)

	for _, n := range []int{1, 3} {
		got, err := uc.Summarize("", n)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestSummarize_Idempotent(t *testing.T) {
	uc := newTestSummarizer(t)

	first, err := uc.Summarize(sampleText, 3)
	require.NoError(t, err)
	second, err := uc.Summarize(sampleText, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSummarize_MonotonicCoverage(t *testing.T) {
	uc := newTestSummarizer(t)

	prev := 0
	for k := 1; k <= 5; k++ {
		analysis, err := uc.Analyze(sampleText, k)
		require.NoError(t, err)

		want := k
		if want > len(analysis.Sentences) {
			want = len(analysis.Sentences)
		}
		assert.Len(t, analysis.Selected, want)
		assert.GreaterOrEqual(t, len(analysis.Summary), prev)
		prev = len(analysis.Summary)
	}
}

func TestSummarize_OutputDrawnFromSegmenter(t *testing.T) {
	uc := newTestSummarizer(t)
	text := "Go is fast. Go is fast. Rust is safe. Zig is small and fast."

	analysis, err := uc.Analyze(text, 10)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, s := range analysis.Selected {
		assert.Contains(t, analysis.Sentences, s.Text)
		assert.False(t, seen[s.Text], "duplicate sentence %q", s.Text)
		seen[s.Text] = true
	}
	assert.Len(t, analysis.Selected, 3)
}

func TestSummarize_StopwordOnlySentence(t *testing.T) {
	uc := newTestSummarizer(t)
	text := "Cats chase mice. It is what it is. Mice fear cats."

	analysis, err := uc.Analyze(text, 3)
	require.NoError(t, err)

	require.Len(t, analysis.Selected, 3)
	last := analysis.Selected[2]
	assert.Equal(t, "It is what it is.", last.Text)
	assert.Equal(t, 0, last.Score)
}

func TestSummarize_Concurrent(t *testing.T) {
	uc := newTestSummarizer(t)

	want, err := uc.Summarize(sampleText, 2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := uc.Summarize(sampleText, 2)
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- fmt.Errorf("got %q", got)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestAnalyze_ContractionsScoreNothing(t *testing.T) {
	uc := newTestSummarizer(t)

	analysis, err := uc.Analyze("I cannot go. Cannot stop now. Dogs bark loudly.", 10)
	require.NoError(t, err)

	assert.NotContains(t, analysis.Frequencies, "cannot")
	assert.Equal(t, 1, analysis.Frequencies["go"])
	assert.Equal(t, 1, analysis.Frequencies["stop"])

	scores := make([]int, len(analysis.Scores))
	for i, s := range analysis.Scores {
		scores[i] = s.Score
	}
	assert.Equal(t, []int{1, 1, 3}, scores)
	assert.Equal(t, "Dogs bark loudly. I cannot go. Cannot stop now.", analysis.Summary)
}

func BenchmarkSummarize(b *testing.B) {
	seg, err := analyzer.NewPunktSegmenter()
	if err != nil {
		b.Fatal(err)
	}
	stops, err := analyzer.Stopwords("english")
	if err != nil {
		b.Fatal(err)
	}
	uc := NewSummarizeUseCase(seg, analyzer.NewWordTokenizer(), stops, nil)
	text := strings.Repeat(sampleText+"\n", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := uc.Summarize(text, 5); err != nil {
			b.Fatal(err)
		}
	}
}
