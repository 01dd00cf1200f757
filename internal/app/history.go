package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernbrook-labs/vitalog/internal/config"
	"github.com/fernbrook-labs/vitalog/internal/engine"
	"github.com/fernbrook-labs/vitalog/internal/output"
	"github.com/fernbrook-labs/vitalog/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent activity across all categories",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	entries, err := db.ListMoodEntries(user, cfg.HistoryLimit)
	if err != nil {
		return fmt.Errorf("listing mood entries: %w", err)
	}
	readings, err := db.ListStressReadings(user, cfg.HistoryLimit)
	if err != nil {
		return fmt.Errorf("listing stress readings: %w", err)
	}
	sessions, err := db.ListSleepSessions(user, engine.DefaultSleepWindow)
	if err != nil {
		return fmt.Errorf("listing sleep sessions: %w", err)
	}
	completions, err := db.ListExerciseCompletions(user, cfg.HistoryLimit)
	if err != nil {
		return fmt.Errorf("listing completions: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"mood_entries":    entries,
			"stress_readings": readings,
			"sleep_sessions":  sessions,
			"completions":     completions,
		})
	}

	snapshot, err := db.GetWellnessSnapshot(user)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if snapshot != nil {
		fmt.Printf("Wellness score %d (%s), computed %s\n",
			snapshot.Score, snapshot.Label,
			output.StyleMuted.Render(snapshot.ComputedAt.Local().Format("Jan 02 15:04")))
	}

	fmt.Println(output.Section("Mood"))
	renderMoodList(entries)

	fmt.Println(output.Section("Stress"))
	renderStressList(readings)

	fmt.Println(output.Section("Sleep"))
	if len(sessions) == 0 {
		fmt.Println("No sleep sessions yet.")
	} else {
		table := output.NewTable("NIGHT", "DURATION", "QUALITY")
		for _, s := range sessions {
			table.AddRow(
				s.Start.Local().Format("Jan 02"),
				fmt.Sprintf("%.1fh", float64(s.DurationMin)/60),
				fmt.Sprintf("%d", s.Quality),
			)
		}
		table.Print()
	}

	fmt.Println(output.Section("Exercise"))
	renderExerciseList(completions)

	return nil
}
