package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"textsum"
	"textsum/config"
	"textsum/internal/adapter/fs"
)

func main() {
	dir := flag.String("dir", ".", "Directory with text files to summarize")
	n := flag.Int("n", 0, "Sentences per summary (default from config)")
	rounds := flag.Int("rounds", 3, "Passes over the file set")
	flag.Parse()

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *n > 0 {
		cfg.Summarize.Sentences = *n
	}

	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes, cfg.Batch.MaxBytes)
	files, err := walker.Walk(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", *dir, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("Usage: go run cmd/benchmark/main.go -dir ./docs [-n 3] [-rounds 3]")
		fmt.Println("\nNo matching files found; check batch.includes in the config.")
		os.Exit(1)
	}

	texts := make([]string, 0, len(files))
	totalBytes := 0
	for _, f := range files {
		text, err := fs.ReadFile(f.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", f.Path, err)
			continue
		}
		texts = append(texts, text)
		totalBytes += len(text)
	}

	s, err := textsum.New(textsum.Options{Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Summarizer not available: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("SUMMARIZATION BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Files:      %d (%d bytes)\n", len(texts), totalBytes)
	fmt.Printf("Sentences:  %d per summary\n", cfg.Summarize.Sentences)
	fmt.Printf("Cache:      %v\n", cfg.Cache.Enabled)
	fmt.Println()

	var (
		totalSentences int
		summaryBytes   int
	)
	for round := 1; round <= *rounds; round++ {
		start := time.Now()
		for _, text := range texts {
			analysis, err := s.Analyze(text, cfg.Summarize.Sentences)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Summarize error: %v\n", err)
				os.Exit(1)
			}
			if round == 1 {
				totalSentences += len(analysis.Sentences)
				summaryBytes += len(analysis.Summary)
			}
		}
		elapsed := time.Since(start)
		fmt.Printf("Round %d: %s (%.2f MB/s)\n", round, elapsed.Round(time.Microsecond), mbPerSec(totalBytes, elapsed))
	}

	hits, misses := s.CacheStats()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("QUALITY METRICS:\n")
	fmt.Printf("  Sentences seen:    %d\n", totalSentences)
	if totalBytes > 0 {
		fmt.Printf("  Compression ratio: %.3f\n", float64(summaryBytes)/float64(totalBytes))
	}
	fmt.Printf("  Cache hits/misses: %d/%d\n", hits, misses)
}

func mbPerSec(bytes int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(bytes) / (1 << 20) / d.Seconds()
}
