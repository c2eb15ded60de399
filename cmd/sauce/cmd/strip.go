package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/sauce"
)

// stripCmd represents the strip command
var stripCmd = &cobra.Command{
	Use:   "strip <file>...",
	Short: "Remove SAUCE metadata from files",
	Long: `Remove the SAUCE record, comment block and EOF marker from files,
leaving only the original payload. Untagged files are left alone.

Example:
  sauce strip 31337.ans`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, _ := cmd.Flags().GetString("backup")

		for _, path := range args {
			file, err := sauce.Open(path, sauce.WithLenientComments())
			if err != nil {
				return err
			}

			if !file.HasRecord() {
				fmt.Printf("%s: no SAUCE record\n", path)
				continue
			}

			file.RemoveRecord()

			var saveOpts []sauce.SaveOption
			if backup != "" {
				saveOpts = append(saveOpts, sauce.WithBackup(backup))
			}
			if err := file.Save(saveOpts...); err != nil {
				return err
			}

			fmt.Printf("%s: stripped\n", path)
		}

		return nil
	},
}

func init() {
	stripCmd.Flags().String("backup", "", "Backup suffix for the original (e.g. .bak)")
	rootCmd.AddCommand(stripCmd)
}
