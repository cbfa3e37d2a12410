package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "electrodes",
	Short: "Guided hand-strength and CTS test companion",
	Long: `electrodes walks a worker through a hand-strength and carpal tunnel
syndrome (CTS) test: it collects a worker ID, name and work station, then
steps through the guided testing procedure in the terminal.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a broken config file)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "electrodes version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newStepsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
