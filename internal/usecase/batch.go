package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"textsum/internal/adapter/fs"
	"textsum/internal/domain"
	"textsum/internal/port"
)

// BatchUseCase summarizes every matching file under a directory and keeps
// the stored summaries in sync with the files on disk.
type BatchUseCase struct {
	store     port.SummaryStore
	walker    port.FileWalker
	analyzer  port.Analyzer
	sentences int
	workers   int
	logger    *zap.Logger

	readFile func(path string) (string, error)
	now      func() time.Time
}

// NewBatchUseCase creates a new batch use case. Each file is summarized to
// at most sentences sentences using up to workers goroutines.
func NewBatchUseCase(
	store port.SummaryStore,
	walker port.FileWalker,
	analyzer port.Analyzer,
	sentences int,
	workers int,
	logger *zap.Logger,
) *BatchUseCase {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchUseCase{
		store:     store,
		walker:    walker,
		analyzer:  analyzer,
		sentences: sentences,
		workers:   workers,
		logger:    logger,
		readFile:  fs.ReadFile,
		now:       time.Now,
	}
}

// BatchResult contains the results of a batch run.
type BatchResult struct {
	FilesSummarized int
	FilesSkipped    int
	FilesDeleted    int
	Errors          []string
}

// ProgressFunc is called after each file is processed.
type ProgressFunc func(processed, total int, path string)

type fileOutcome int

const (
	outcomeSummarized fileOutcome = iota
	outcomeSkipped
)

// Run summarizes the files under root. Files whose stored summary is still
// current are skipped and summaries of files that disappeared are deleted.
// Per-file failures are collected in the result; only walk, store listing
// and cancellation errors abort the run.
func (u *BatchUseCase) Run(ctx context.Context, root string, progress ProgressFunc) (*BatchResult, error) {
	if u.sentences < 1 {
		return nil, fmt.Errorf("%w: sentence count must be at least 1, got %d", domain.ErrInvalidArgument, u.sentences)
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existingRecs, err := u.store.ListSummaries()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing summaries: %w", err)
	}
	existing := make(map[string]domain.SummaryRecord, len(existingRecs))
	for _, rec := range existingRecs {
		existing[rec.Path] = rec
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.Path] = true
	}

	result := &BatchResult{}
	var (
		mu        sync.Mutex
		processed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for _, file := range files {
		if gctx.Err() != nil {
			break
		}

		var prev *domain.SummaryRecord
		if rec, ok := existing[file.Path]; ok {
			prev = &rec
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome, err := u.processFile(file, prev)

			mu.Lock()
			defer mu.Unlock()

			processed++
			switch {
			case err != nil:
				result.Errors = append(result.Errors, fmt.Sprintf("failed to summarize %s: %v", file.Path, err))
				u.logger.Warn("summarize file failed", zap.String("path", file.Path), zap.Error(err))
			case outcome == outcomeSkipped:
				result.FilesSkipped++
			default:
				result.FilesSummarized++
			}
			if progress != nil {
				progress(processed, len(files), file.Path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for path, rec := range existing {
		if seen[path] {
			continue
		}
		if err := u.store.DeleteSummary(rec.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			continue
		}
		result.FilesDeleted++
	}

	u.logger.Info("batch finished",
		zap.String("root", root),
		zap.Int("summarized", result.FilesSummarized),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("deleted", result.FilesDeleted),
		zap.Int("errors", len(result.Errors)),
	)

	return result, nil
}

// processFile summarizes a single file unless prev is still current.
func (u *BatchUseCase) processFile(file port.FileInfo, prev *domain.SummaryRecord) (fileOutcome, error) {
	modTime := time.Unix(file.ModTime, 0).UTC()

	if prev != nil && prev.Sentences == u.sentences && prev.ModTime.Unix() == file.ModTime {
		return outcomeSkipped, nil
	}

	content, err := u.readFile(file.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}
	hash := contentHash(content)

	// touched but unchanged: refresh the stored mod time only
	if prev != nil && prev.Sentences == u.sentences && prev.ContentHash == hash {
		rec := *prev
		rec.ModTime = modTime
		if err := u.store.PutSummary(rec); err != nil {
			return 0, fmt.Errorf("failed to store summary: %w", err)
		}
		return outcomeSkipped, nil
	}

	analysis, err := u.analyzer.Analyze(content, u.sentences)
	if err != nil {
		return 0, err
	}

	rec := domain.SummaryRecord{
		ID:          generateRecordID(file.Path),
		Path:        file.Path,
		ModTime:     modTime,
		ContentHash: hash,
		Sentences:   u.sentences,
		Summary:     analysis.Summary,
		Selected:    analysis.Selected,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.store.PutSummary(rec); err != nil {
		return 0, fmt.Errorf("failed to store summary: %w", err)
	}
	return outcomeSummarized, nil
}

// generateRecordID creates a stable ID for a file based on its path.
func generateRecordID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}

func contentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
