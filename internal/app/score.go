package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernbrook-labs/vitalog/internal/config"
	"github.com/fernbrook-labs/vitalog/internal/engine"
	"github.com/fernbrook-labs/vitalog/internal/output"
	"github.com/fernbrook-labs/vitalog/internal/store"
	"github.com/fernbrook-labs/vitalog/internal/tracker"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Recompute and show your wellness score",
	Long: `Recompute the wellness score from everything logged so far and show the
per-category breakdown. The score is recomputed from scratch on every run
and replaces the stored snapshot.`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	svc := tracker.New(db)
	snapshot, err := svc.RecomputeWellness(resolveUser(cfg))
	if err != nil {
		return err
	}
	breakdown := svc.Breakdown(snapshot)

	if flagJSON {
		return printJSON(map[string]any{
			"snapshot":  snapshot,
			"breakdown": breakdown,
		})
	}

	renderScore(snapshot, breakdown)
	return nil
}

func renderScore(snapshot *store.WellnessSnapshot, b engine.ScoreBreakdown) {
	fmt.Println(output.Section("Wellness Score"))
	fmt.Printf("\n %s  %s\n\n",
		output.ScoreBar(float64(snapshot.Score), 20),
		output.StyleBold.Render(snapshot.Label),
	)

	row := func(label string, points int, max int, detail string) {
		fmt.Printf(" %s %2d/%-3d %s\n",
			output.StyleLabel.Render(label), points, max, output.StyleMuted.Render(detail))
	}

	row("Mood activity", b.Mood, 20, fmt.Sprintf("%d entries", snapshot.MoodEntries))
	row("Exercise", b.Exercise, 25, fmt.Sprintf("fitness level %d", snapshot.FitnessLevel))
	row("Stress", b.Stress, 20, fmt.Sprintf("avg tier %.1f", snapshot.AvgStressTier))
	row("Sleep", b.Sleep, 25, fmt.Sprintf("avg %.1fh", snapshot.AvgSleepHours))
	fmt.Printf(" %s %2d     %s\n",
		output.StyleLabel.Render("Streak"), b.Streak,
		output.StyleMuted.Render(fmt.Sprintf("%d completions", snapshot.StreakDays)))
	fmt.Println()
}
