package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fernbrook-labs/vitalog/internal/config"
	"github.com/fernbrook-labs/vitalog/internal/engine"
	"github.com/fernbrook-labs/vitalog/internal/output"
	"github.com/fernbrook-labs/vitalog/internal/store"
	"github.com/fernbrook-labs/vitalog/internal/tracker"
)

var (
	moodNote  string
	moodShare bool
	moodList  bool
)

var moodCmd = &cobra.Command{
	Use:   "mood [category]",
	Short: "Log how you're feeling, with an optional note",
	Long: `Log a mood entry. The category is one of: ` + strings.Join(engine.Moods, ", ") + `.
The note text is scored for sentiment and a coaching insight is derived.

Examples:
  vitalog mood happy --note "great run this morning"
  vitalog mood anxious --note "big presentation tomorrow" --share
  vitalog mood --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMood,
}

func init() {
	moodCmd.Flags().StringVar(&moodNote, "note", "", "Free-text note to score for sentiment")
	moodCmd.Flags().BoolVar(&moodShare, "share", false, "Mark the entry for community sharing")
	moodCmd.Flags().BoolVar(&moodList, "list", false, "List recent mood entries")
	rootCmd.AddCommand(moodCmd)
}

func runMood(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	user := resolveUser(cfg)

	if moodList {
		entries, err := db.ListMoodEntries(user, cfg.HistoryLimit)
		if err != nil {
			return fmt.Errorf("listing mood entries: %w", err)
		}
		if flagJSON {
			return printJSON(entries)
		}
		renderMoodList(entries)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("mood category required (one of: %s)", strings.Join(engine.Moods, ", "))
	}

	svc := tracker.New(db)
	entry, err := svc.LogMood(user, args[0], moodNote, moodShare)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(entry)
	}

	fmt.Printf("Logged %s mood (sentiment %+.1f)\n", output.StyleBold.Render(entry.Mood), entry.Sentiment)
	fmt.Println(output.StyleMuted.Render(entry.Insight))
	if entry.Shared {
		fmt.Println(output.StyleMuted.Render("Marked for community sharing."))
	}
	return nil
}

func renderMoodList(entries []store.MoodEntry) {
	if len(entries) == 0 {
		fmt.Println("No mood entries yet. Log one with: vitalog mood <category>")
		return
	}

	table := output.NewTable("WHEN", "MOOD", "SENTIMENT", "NOTE")
	for _, e := range entries {
		note := e.Body
		if len(note) > 40 {
			note = note[:37] + "..."
		}
		table.AddRow(
			e.CreatedAt.Local().Format("Jan 02 15:04"),
			e.Mood,
			fmt.Sprintf("%+.1f", e.Sentiment),
			note,
		)
	}
	table.Print()
}

// resolveUser picks the user id from the --user flag or config default.
func resolveUser(cfg *config.Config) string {
	if flagUser != "" {
		return flagUser
	}
	return cfg.DefaultUser
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
