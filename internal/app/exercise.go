package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fernbrook-labs/vitalog/internal/config"
	"github.com/fernbrook-labs/vitalog/internal/engine"
	"github.com/fernbrook-labs/vitalog/internal/output"
	"github.com/fernbrook-labs/vitalog/internal/store"
	"github.com/fernbrook-labs/vitalog/internal/tracker"
)

var (
	exerciseScore int
	exerciseList  bool
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise [name]",
	Short: "Record a completed mental exercise",
	Long: `Record a completed exercise session. Each completion extends your streak
and raises your fitness level (up to 100).

Examples:
  vitalog exercise breathing
  vitalog exercise meditation --score 85
  vitalog exercise --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExercise,
}

func init() {
	exerciseCmd.Flags().IntVar(&exerciseScore, "score", 0, "Session score")
	exerciseCmd.Flags().BoolVar(&exerciseList, "list", false, "List recent completions")
	rootCmd.AddCommand(exerciseCmd)
}

func runExercise(cmd *cobra.Command, args []string) error {
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

	if exerciseList {
		completions, err := db.ListExerciseCompletions(user, cfg.HistoryLimit)
		if err != nil {
			return fmt.Errorf("listing completions: %w", err)
		}
		if flagJSON {
			return printJSON(completions)
		}
		renderExerciseList(completions)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("exercise name required")
	}

	svc := tracker.New(db)
	completion, err := svc.CompleteExercise(user, args[0], exerciseScore)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(completion)
	}

	fmt.Printf("Completed %s — streak %s, fitness level %s\n",
		output.StyleBold.Render(completion.Exercise),
		output.StyleSuccess.Render(strconv.Itoa(completion.Streak)),
		output.StyleSuccess.Render(strconv.Itoa(completion.FitnessLevel)),
	)
	if completion.FitnessLevel == engine.MaxFitnessLevel {
		fmt.Println(output.StyleMuted.Render("Fitness level is at its ceiling."))
	}
	return nil
}

func renderExerciseList(completions []store.ExerciseCompletion) {
	if len(completions) == 0 {
		fmt.Println("No completions yet. Record one with: vitalog exercise <name>")
		return
	}

	table := output.NewTable("WHEN", "EXERCISE", "SCORE", "STREAK", "LEVEL")
	for _, c := range completions {
		table.AddRow(
			c.CreatedAt.Local().Format("Jan 02 15:04"),
			c.Exercise,
			strconv.Itoa(c.Score),
			strconv.Itoa(c.Streak),
			strconv.Itoa(c.FitnessLevel),
		)
	}
	table.Print()
}
