package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/config"
	"textsum/internal/domain"
)

const (
	sampleFirst = "Natural language processing (NLP) is a field of artificial intelligence that focuses on the interaction between computers and humans through natural language."
	sampleThird = "Some common applications of NLP include chatbots, sentiment analysis, and language translation."
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSummarizeCommand_Sample(t *testing.T) {
	out, err := execute(t, "", "summarize", "--sample", "-n", "2", "-d", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, sampleFirst+" "+sampleThird+"\n", out)
}

func TestSummarizeCommand_Stdin(t *testing.T) {
	out, err := execute(t, "Cats purr. Dogs bark loudly at dogs.", "summarize", "-", "-n", "1", "-d", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Dogs bark loudly at dogs.\n", out)
}

func TestSummarizeCommand_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("Cats purr. Dogs bark loudly at dogs."), 0o644))

	out, err := execute(t, "", "summarize", path, "-n", "5", "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, "Dogs bark loudly at dogs. Cats purr.\n", out)
}

func TestSummarizeCommand_InvalidCount(t *testing.T) {
	_, err := execute(t, "", "summarize", "--sample", "-n", "0", "-d", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSummarizeCommand_JSONExplain(t *testing.T) {
	out, err := execute(t, "", "summarize", "--sample", "--json", "--explain", "-d", t.TempDir())
	require.NoError(t, err)

	var got summarizeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Selected, 3)
	assert.Len(t, got.Scores, 4)
	assert.Equal(t, 4, got.Frequencies["language"])
	assert.True(t, strings.HasPrefix(got.Summary, sampleFirst+" "+sampleThird))
}

func TestSummarizeCommand_ConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("summarize:\n  sentences: 1\n"), 0o644))

	out, err := execute(t, "", "summarize", "--sample", "-d", dir)
	require.NoError(t, err)
	assert.Equal(t, sampleFirst+"\n", out)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "config", "init", "-d", dir)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Summarize.Sentences)

	_, err = execute(t, "", "config", "init", "-d", dir)
	assert.Error(t, err)

	_, err = execute(t, "", "config", "init", "--force", "-d", dir)
	assert.NoError(t, err)
}

func TestBatchAndShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("Cats purr. Dogs bark loudly at dogs."), 0o644))
	mod := time.Unix(1700000000, 0)
	require.NoError(t, os.Chtimes(path, mod, mod))

	_, err := execute(t, "", "batch", "-d", dir)
	require.NoError(t, err)

	out, err := execute(t, "", "show", "--json", "-d", dir)
	require.NoError(t, err)

	var recs []domain.SummaryRecord
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "Dogs bark loudly at dogs. Cats purr.", recs[0].Summary)
	assert.Equal(t, mod.Unix(), recs[0].ModTime.Unix())

	out, err = execute(t, "", "show", path, "-d", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "Dogs bark loudly at dogs.")
}

func TestShow_NoStore(t *testing.T) {
	_, err := execute(t, "", "show", "-d", t.TempDir())
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Millisecond, "<1s"},
		{42 * time.Second, "42s"},
		{3*time.Minute + 5*time.Second, "3m5s"},
		{2*time.Hour + 7*time.Minute, "2h7m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.in))
	}
}
