// Command rollcall runs the biometric attendance daemon and its operator
// tooling.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/rollcall/internal/ui"
)

var (
	jsonOutput bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "rollcall",
	Short: "Biometric attendance system",
	Long: `rollcall tracks student attendance from a serial fingerprint scanner.

The run command owns the device and the roster; the remaining commands
inspect or maintain the persisted roster and subscribe to the event bus.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(deviceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
