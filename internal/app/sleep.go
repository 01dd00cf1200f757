package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fernbrook-labs/vitalog/internal/config"
	"github.com/fernbrook-labs/vitalog/internal/engine"
	"github.com/fernbrook-labs/vitalog/internal/output"
	"github.com/fernbrook-labs/vitalog/internal/store"
	"github.com/fernbrook-labs/vitalog/internal/tracker"
)

var (
	sleepQuality int
	sleepRoutine bool
	sleepList    bool
)

var sleepCmd = &cobra.Command{
	Use:   "sleep [start] [end]",
	Short: "Log a night of sleep",
	Long: `Log a sleep session from start to end time. Times are parsed as RFC3339 or
"2006-01-02 15:04". The end must not precede the start.

Examples:
  vitalog sleep "2026-08-28 23:10" "2026-08-29 06:40" --quality 8 --routine
  vitalog sleep --list`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSleep,
}

func init() {
	sleepCmd.Flags().IntVar(&sleepQuality, "quality", 0, "Sleep quality rating, 1-10")
	sleepCmd.Flags().BoolVar(&sleepRoutine, "routine", false, "Bedtime routine was followed")
	sleepCmd.Flags().BoolVar(&sleepList, "list", false, "Show the recent sleep window with averages")
	rootCmd.AddCommand(sleepCmd)
}

func runSleep(cmd *cobra.Command, args []string) error {
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
	svc := tracker.New(db)

	if sleepList {
		sessions, err := db.ListSleepSessions(user, engine.DefaultSleepWindow)
		if err != nil {
			return fmt.Errorf("listing sleep sessions: %w", err)
		}
		summary, err := svc.SleepSummary(user)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]any{"sessions": sessions, "summary": summary})
		}
		renderSleepList(sessions, summary)
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("sleep start and end times required")
	}
	start, err := parseTimeArg(args[0])
	if err != nil {
		return fmt.Errorf("parsing start time: %w", err)
	}
	end, err := parseTimeArg(args[1])
	if err != nil {
		return fmt.Errorf("parsing end time: %w", err)
	}

	session, err := svc.LogSleep(user, start, end, sleepQuality, sleepRoutine)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(session)
	}

	hours := float64(session.DurationMin) / 60
	fmt.Printf("Logged %.1fh of sleep, quality %d/10\n", hours, session.Quality)
	return nil
}

func renderSleepList(sessions []store.SleepSession, summary engine.SleepSummary) {
	if len(sessions) == 0 {
		fmt.Println("No sleep sessions yet. Log one with: vitalog sleep <start> <end> --quality N")
		return
	}

	table := output.NewTable("NIGHT", "DURATION", "QUALITY", "ROUTINE")
	for _, s := range sessions {
		routine := ""
		if s.RoutineFollowed {
			routine = "yes"
		}
		table.AddRow(
			s.Start.Local().Format("Jan 02"),
			fmt.Sprintf("%.1fh", float64(s.DurationMin)/60),
			strconv.Itoa(s.Quality),
			routine,
		)
	}
	table.Print()

	fmt.Printf("\nLast %d nights: %.1fh average, quality %.1f/10\n",
		len(sessions), summary.AvgHours, summary.AvgQuality)
}

// parseTimeArg accepts RFC3339 or a local "2006-01-02 15:04" timestamp.
func parseTimeArg(arg string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, arg); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", arg, time.Local)
}
