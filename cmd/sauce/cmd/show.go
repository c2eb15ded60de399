package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/sauce"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>...",
	Short: "Print the SAUCE record of one or more files",
	Long: `Print the SAUCE record of one or more files.

Example:
  sauce show 31337.ans`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lenient, _ := cmd.Flags().GetBool("lenient")

		var opts []sauce.Option
		if lenient {
			opts = append(opts, sauce.WithLenientComments())
		}

		for i, path := range args {
			if i > 0 {
				fmt.Println()
			}

			file, err := sauce.Open(path, opts...)
			if err != nil {
				return err
			}

			fmt.Printf("File....: %s\n", file.Path)
			if !file.HasRecord() {
				fmt.Println("No SAUCE record found")
				continue
			}

			rec := file.Record
			fmt.Printf("Version.: %s\n", rec.Version)
			fmt.Printf("Title...: %s\n", rec.Title)
			fmt.Printf("Author..: %s\n", rec.Author)
			fmt.Printf("Group...: %s\n", rec.Group)
			fmt.Printf("Date....: %s\n", rec.Date)
			fmt.Printf("FileSize: %d\n", rec.FileSize)
			fmt.Printf("Type....: %s (%d/%d)\n", sauce.TypeName(rec.DataType, rec.FileType), rec.DataType, rec.FileType)

			tinfo := []uint16{rec.TInfo1, rec.TInfo2, rec.TInfo3, rec.TInfo4}
			for n, v := range tinfo {
				caption := sauce.TInfoCaption(rec.DataType, rec.FileType, n+1)
				if caption != "" {
					fmt.Printf("TInfo%d..: %d (%s)\n", n+1, v, caption)
				} else {
					fmt.Printf("TInfo%d..: %d\n", n+1, v)
				}
			}

			fmt.Printf("Flags...: %d\n", rec.TFlags)
			if rec.ICEColors() {
				fmt.Println("          iCE Color")
			}
			if rec.TInfoS != "" {
				fmt.Printf("TInfoS..: %s\n", rec.TInfoS)
			}

			for _, line := range file.Comments {
				fmt.Printf("Comment.: %s\n", line)
			}
			for _, w := range file.Warnings {
				fmt.Printf("Warning.: %s\n", w)
			}
		}

		return nil
	},
}

func init() {
	showCmd.Flags().Bool("lenient", false, "Tolerate corrupt comment blocks")
	rootCmd.AddCommand(showCmd)
}
