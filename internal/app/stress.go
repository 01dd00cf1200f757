package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fernbrook-labs/vitalog/internal/config"
	"github.com/fernbrook-labs/vitalog/internal/engine"
	"github.com/fernbrook-labs/vitalog/internal/output"
	"github.com/fernbrook-labs/vitalog/internal/store"
	"github.com/fernbrook-labs/vitalog/internal/tracker"
)

var (
	stressSource string
	stressList   bool
)

var stressCmd = &cobra.Command{
	Use:   "stress [heart_rate_bpm]",
	Short: "Record a heart-rate stress reading",
	Long: `Record a heart-rate sample. The reading is classified into a stress tier
(2-9); tiers of 7 and above prompt an intervention suggestion.

Examples:
  vitalog stress 72
  vitalog stress 95 --source wearable
  vitalog stress --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStress,
}

func init() {
	stressCmd.Flags().StringVar(&stressSource, "source", engine.SourceManual,
		"Reading source: "+strings.Join(engine.Sources, ", "))
	stressCmd.Flags().BoolVar(&stressList, "list", false, "List recent stress readings")
	rootCmd.AddCommand(stressCmd)
}

func runStress(cmd *cobra.Command, args []string) error {
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

	if stressList {
		readings, err := db.ListStressReadings(user, cfg.HistoryLimit)
		if err != nil {
			return fmt.Errorf("listing stress readings: %w", err)
		}
		if flagJSON {
			return printJSON(readings)
		}
		renderStressList(readings)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("heart rate (bpm) required")
	}
	bpm, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("heart rate must be a number, got %q", args[0])
	}

	svc := tracker.New(db)
	reading, err := svc.RecordStress(user, bpm, stressSource)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(reading)
	}

	fmt.Printf("Recorded %d bpm → stress tier %s\n", reading.HeartRate, tierLabel(reading.Tier))
	if reading.Intervention {
		fmt.Println(output.StyleError.Render("High stress detected.") +
			" A short calming exercise may help: vitalog exercise breathing")
	}
	return nil
}

func renderStressList(readings []store.StressReading) {
	if len(readings) == 0 {
		fmt.Println("No stress readings yet. Record one with: vitalog stress <bpm>")
		return
	}

	table := output.NewTable("WHEN", "BPM", "TIER", "SOURCE")
	for _, r := range readings {
		tier := strconv.Itoa(r.Tier)
		if r.Intervention {
			tier += " !"
		}
		table.AddRow(
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			strconv.Itoa(r.HeartRate),
			tier,
			r.Source,
		)
	}
	table.Print()
}

// tierLabel styles a stress tier by severity.
func tierLabel(tier int) string {
	s := strconv.Itoa(tier)
	switch {
	case tier >= 7:
		return output.StyleError.Render(s)
	case tier >= 5:
		return output.StyleWarning.Render(s)
	default:
		return output.StyleSuccess.Render(s)
	}
}
