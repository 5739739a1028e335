package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"textsum"
	"textsum/config"
	"textsum/internal/adapter/fs"
	"textsum/internal/adapter/store"
	"textsum/internal/usecase"
)

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Summarize every matching file in a directory",
	Long: `Summarize the files in the specified directory that match the configured
include globs. Summaries are stored in .textsum/summaries.db within the target
directory; unchanged files are skipped on later runs.

Examples:
  textsum batch .              # Summarize current directory
  textsum batch /path/to/docs  # Summarize specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	if err := config.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", config.DirName, err)
	}

	dbPath := config.StoreDBPath(path)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open summary store: %w", err)
	}
	defer st.Close()

	migrationResult, err := st.CheckMigration(cfg)
	if err != nil {
		return fmt.Errorf("failed to check migration: %w", err)
	}

	if migrationResult.NeedsRebuild {
		fmt.Printf("Summary rebuild required: %s\n", migrationResult.Reason)
		fmt.Println("Clearing stored summaries...")
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear summaries: %w", err)
		}
	} else if migrationResult.NeedsMigration {
		fmt.Printf("Running schema migration: %s\n", migrationResult.Reason)
		if err := st.Migrate(cfg); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	summarizer, err := textsum.New(textsum.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes, cfg.Batch.MaxBytes)
	batchUC := usecase.NewBatchUseCase(st, walker, summarizer, cfg.Summarize.Sentences, cfg.Batch.Workers, logger)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progressCallback := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Summarizing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}

		bar.Set(processed)

		elapsed := time.Since(startTime)
		rate := float64(processed) / elapsed.Seconds()
		if rate > 0 {
			eta := time.Duration(float64(total-processed)/rate) * time.Second
			bar.Describe(fmt.Sprintf("[cyan]Summarizing[reset] ETA: %s", formatDuration(eta)))
		}
	}

	result, err := batchUC.Run(cmd.Context(), path, progressCallback)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	// record the config the stored summaries were built with
	if err := st.Migrate(cfg); err != nil {
		return fmt.Errorf("failed to update schema info: %w", err)
	}

	fmt.Printf("\nBatch complete:\n")
	fmt.Printf("  Files summarized: %d\n", result.FilesSummarized)
	fmt.Printf("  Files skipped:    %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Files deleted:    %d (removed)\n", result.FilesDeleted)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nSummaries stored at: %s\n", dbPath)
	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
