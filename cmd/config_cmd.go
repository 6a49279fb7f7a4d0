package cmd

import (
	"fmt"
	"time"

	"vaultview/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.Path())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		if config.Exists() {
			return fmt.Errorf("config already exists at %s", config.Path())
		}
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Printf("  Wrote defaults to %s\n", config.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Simulation]")
	fmt.Printf("    Seed capital:      %.2f\n", cfg.Simulation.SeedCapital)
	fmt.Printf("    Bootstrap balance: %.2f (week %d)\n", cfg.Simulation.BootstrapBalance, cfg.Simulation.BootstrapWeeks)
	fmt.Printf("    Weekly rate:       %.1f%% – %.1f%%\n", cfg.Simulation.MinWeeklyRate*100, cfg.Simulation.MaxWeeklyRate*100)
	fmt.Println()

	fmt.Println("  [Schedule]")
	fmt.Printf("    Window:        %s → %s\n", cfg.Schedule.WindowStart, cfg.Schedule.WindowEnd)
	fmt.Printf("    Timezone:      %s\n", cfg.Schedule.Timezone)
	fmt.Printf("    Trigger:       %s %02d:%02d\n",
		time.Weekday(cfg.Schedule.TargetWeekday), cfg.Schedule.TargetHour, cfg.Schedule.TargetMinute)
	fmt.Printf("    Poll interval: %s\n", cfg.Schedule.PollInterval())
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Printf("    Theme:    %s\n", cfg.Display.Theme)

	return nil
}
