package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sauce",
	Short: "Inspect and edit SAUCE metadata records",
	Long: `sauce reads and writes the SAUCE metadata block that trails
text-art and related files: title, author, group, date, content type
codes and free-text comment lines.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
