// Package app contains the Cobra command tree for vitalog.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernbrook-labs/vitalog/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagUser    string
	flagNoColor bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "vitalog",
	Short: "Personal wellness tracking from the command line",
	Long: `vitalog is a local-first personal wellness tracker. Log your mood, stress
readings, sleep, and mental exercises; vitalog derives sentiment, stress
tiers, coaching insights, and an aggregate wellness score from what you log.

Run 'vitalog score' any time to see where you stand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.DetectTerminal()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("vitalog", appVersion)
		fmt.Println()
		fmt.Println("Log an observation or check your score:")
		fmt.Println("  mood      Log how you're feeling, with an optional note")
		fmt.Println("  stress    Record a heart-rate stress reading")
		fmt.Println("  sleep     Log a night of sleep")
		fmt.Println("  exercise  Record a completed mental exercise")
		fmt.Println("  score     Recompute and show your wellness score")
		fmt.Println("  history   Show recent activity across all categories")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/vitalog/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "User id to log against (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
