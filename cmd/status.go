package cmd

import (
	"fmt"
	"time"

	"vaultview/internal/cli"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a one-shot snapshot of the simulated balance",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tracker, err := buildTracker(cfg)
	if err != nil {
		return err
	}
	tracker.Bootstrap()

	now := time.Now()
	res := tracker.Poll(now)

	fmt.Println()
	fmt.Print(cli.RenderStatus(tracker.Snapshot(), res, now, cfg.Display.Currency))
	fmt.Println()
	return nil
}
