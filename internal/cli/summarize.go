package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textsum"
	"textsum/internal/adapter/fs"
	"textsum/internal/domain"
)

var (
	summarizeCount   int
	summarizeJSON    bool
	summarizeExplain bool
	summarizeSample  bool
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file|-]",
	Short: "Summarize a text",
	Long: `Summarize a file, standard input ("-") or the built-in sample paragraph.
Sentences are printed highest score first, joined by a single space.

Examples:
  textsum summarize article.txt
  textsum summarize article.txt -n 5 --json
  textsum summarize --sample --explain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().IntVarP(&summarizeCount, "sentences", "n", 0, "number of sentences (default from config)")
	summarizeCmd.Flags().BoolVar(&summarizeJSON, "json", false, "output as JSON")
	summarizeCmd.Flags().BoolVar(&summarizeExplain, "explain", false, "print the word frequency and sentence score tables")
	summarizeCmd.Flags().BoolVar(&summarizeSample, "sample", false, "summarize the built-in sample paragraph")
}

type summarizeOutput struct {
	Summary     string                  `json:"summary"`
	Selected    []domain.ScoredSentence `json:"selected"`
	Scores      []domain.ScoredSentence `json:"scores,omitempty"`
	Frequencies map[string]int          `json:"frequencies,omitempty"`
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	n := cfg.Summarize.Sentences
	if cmd.Flags().Changed("sentences") {
		n = summarizeCount
	}

	s, err := textsum.New(textsum.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	analysis, err := s.Analyze(text, n)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}
	logger.Info("summarized", zap.Int("sentences", len(analysis.Sentences)), zap.Int("selected", len(analysis.Selected)))

	out := cmd.OutOrStdout()

	if summarizeJSON {
		result := summarizeOutput{
			Summary:  analysis.Summary,
			Selected: analysis.Selected,
		}
		if summarizeExplain {
			result.Scores = analysis.Scores
			result.Frequencies = analysis.Frequencies
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if summarizeExplain {
		printExplain(out, analysis)
	}
	fmt.Fprintln(out, analysis.Summary)
	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case summarizeSample:
		if len(args) > 0 {
			return "", fmt.Errorf("--sample does not take a file argument")
		}
		return textsum.SampleText, nil
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		text, err := fs.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return text, nil
	}
}

func printExplain(w io.Writer, a *domain.Analysis) {
	type wordCount struct {
		word  string
		count int
	}
	words := make([]wordCount, 0, len(a.Frequencies))
	for word, count := range a.Frequencies {
		words = append(words, wordCount{word, count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].count != words[j].count {
			return words[i].count > words[j].count
		}
		return words[i].word < words[j].word
	})

	fmt.Fprintf(w, "Word frequencies (%d words):\n", len(words))
	for _, wc := range words {
		fmt.Fprintf(w, "  %-20s %d\n", wc.word, wc.count)
	}

	fmt.Fprintf(w, "\nSentence scores (%d sentences):\n", len(a.Scores))
	for _, s := range a.Scores {
		fmt.Fprintf(w, "  [%d] %4d  %s\n", s.Position, s.Score, truncate(s.Text, 70))
	}
	fmt.Fprintln(w)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
