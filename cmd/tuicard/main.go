// Package main provides the CLI entrypoint for tuicard.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuicard/internal/config"
	"github.com/verte-zerg/tuicard/internal/deck"
	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/session"
	"github.com/verte-zerg/tuicard/internal/stats"
	"github.com/verte-zerg/tuicard/internal/store"
	"github.com/verte-zerg/tuicard/internal/tui"
)

var (
	reviewShuffle bool
	reviewAmount  int
	reviewChunk   string
	reviewMode    bool

	statsDeck  string
	statsSince string
	statsLast  int

	convertOut string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuicard [deck.txt]",
		Short:         "TUI flashcard reviewer",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReviewCmd,
	}

	rootCmd.Flags().BoolVar(&reviewShuffle, "shuffle", false, "shuffle the deck before reviewing")
	rootCmd.Flags().IntVar(&reviewAmount, "amount", 0, "review at most N cards (0 = all)")
	rootCmd.Flags().StringVar(&reviewChunk, "chunk", "1/1", "review the i-th of n deck parts (i/n)")
	rootCmd.Flags().BoolVar(&reviewMode, "review", false, "track correct/incorrect answers")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

func runReviewCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "shuffle", &reviewShuffle, fileCfg.Review.Shuffle)
	applyIntConfig(cmd, "amount", &reviewAmount, fileCfg.Review.Amount)
	applyStringConfig(cmd, "chunk", &reviewChunk, fileCfg.Review.Chunk)
	applyBoolConfig(cmd, "review", &reviewMode, fileCfg.Review.Review)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	deckPath, err := resolveDeckPath(ctx, st, args)
	if err != nil {
		return err
	}

	chunk, err := parseChunk(reviewChunk)
	if err != nil {
		return err
	}
	params, err := session.NewParams(reviewShuffle, reviewAmount, chunk, reviewMode)
	if err != nil {
		return err
	}

	cards, err := deck.ParseFile(deckPath)
	if err != nil {
		return err
	}
	if err := st.TouchRecent(ctx, deckPath); err != nil {
		logErrf("failed to record recent file: %v\n", err)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	sequence, err := session.Transform(cards, params, rnd)
	if err != nil {
		return err
	}

	cfg := model.ReviewConfig{
		DeckPath:   deckPath,
		Shuffle:    reviewShuffle,
		Amount:     reviewAmount,
		ChunkIndex: chunk.Index,
		ChunkCount: chunk.Count,
		Review:     reviewMode,
	}
	tuiModel := tui.NewModel(cfg, st, sequence, params, rnd)
	program := tea.NewProgram(tuiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveDeckPath uses the argument when given, otherwise falls back to the
// most recently opened deck.
func resolveDeckPath(ctx context.Context, st *store.Store, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	last, err := st.LastOpened(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to look up recent decks: %w", err)
	}
	if last == "" {
		return "", fmt.Errorf("no deck file given and no recently opened deck")
	}
	logErrf("Reviewing most recent deck: %s\n", last)
	return last, nil
}

// parseChunk decodes an "i/n" chunk descriptor from untrusted CLI input.
func parseChunk(value string) (session.Chunk, error) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 2 {
		return session.Chunk{}, fmt.Errorf("--chunk must have the form i/n, got %q", value)
	}
	index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return session.Chunk{}, fmt.Errorf("invalid chunk index %q: %w", parts[0], err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return session.Chunk{}, fmt.Errorf("invalid chunk count %q: %w", parts[1], err)
	}
	return session.NewChunk(index, count)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show review history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsDeck, "deck", "", "deck path filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N passes")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	cfg := model.StatsConfig{
		Deck:  statsDeck,
		Since: sinceTime,
		Last:  statsLast,
	}
	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return stats.RenderReport(cmd.OutOrStdout(), report)
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import cards.tsv",
		Short: "Convert a TSV file to a deck file",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
	cmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default: input with .txt extension)")
	return cmd
}

func runImportCmd(_ *cobra.Command, args []string) error {
	inPath := args[0]
	file, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", inPath, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()
	cards, err := deck.ReadTSV(file)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", inPath, err)
	}

	outPath := convertOut
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".txt"
	}
	return writeConverted(outPath, func(out *os.File) error {
		return deck.WriteDeck(out, cards)
	})
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export deck.txt",
		Short: "Convert a deck file to TSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default: input with .tsv extension)")
	return cmd
}

func runExportCmd(_ *cobra.Command, args []string) error {
	inPath := args[0]
	cards, err := deck.ParseFile(inPath)
	if err != nil {
		return err
	}
	outPath := convertOut
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".tsv"
	}
	return writeConverted(outPath, func(out *os.File) error {
		return deck.WriteTSV(out, cards)
	})
}

// writeConverted writes a converted deck through a temp file and rename.
func writeConverted(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "deck-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := write(tmpFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logErrf("Wrote %s\n", path)
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# tuicard configuration
# Uncomment a value to enable it. CLI flags override config values.

[review]
# shuffle = false    # Shuffle the deck before reviewing
# amount = 20        # Review at most N cards (0 = all)
# chunk = "1/1"      # Review the i-th of n deck parts
# review = false     # Track correct/incorrect answers
`
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
