package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"textsum/config"
	"textsum/internal/adapter/store"
	"textsum/internal/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show stored summaries",
	Long: `Show the summaries stored by "textsum batch". With a file argument only that
file's summary is printed.

Examples:
  textsum show
  textsum show docs/intro.md --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	dbPath := config.StoreDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no summaries found. Run 'textsum batch' first")
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open summary store: %w", err)
	}
	defer st.Close()

	var recs []domain.SummaryRecord
	if len(args) > 0 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		rec, err := st.GetSummaryByPath(path)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no summary stored for %s", path)
		}
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	} else {
		recs, err = st.ListSummaries()
		if err != nil {
			return fmt.Errorf("failed to list summaries: %w", err)
		}
		sort.Slice(recs, func(i, j int) bool { return recs[i].Path < recs[j].Path })
	}

	out := cmd.OutOrStdout()

	if showJSON {
		data, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(recs) == 0 {
		fmt.Fprintln(out, "No summaries stored.")
		return nil
	}

	for i, rec := range recs {
		if i > 0 {
			fmt.Fprintln(out)
		}
		rel, err := filepath.Rel(GetRootDir(), rec.Path)
		if err != nil {
			rel = rec.Path
		}
		fmt.Fprintf(out, "%s (%d sentences, %s)\n", rel, len(rec.Selected), rec.ModTime.Local().Format("2006-01-02 15:04"))
		fmt.Fprintf(out, "  %s\n", rec.Summary)
	}
	return nil
}
