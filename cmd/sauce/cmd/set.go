package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/sauce"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Set SAUCE record fields on a file",
	Long: `Set SAUCE record fields on a file, attaching a fresh record if
the file has none yet. Only the flags you pass are changed.

Example:
  sauce set --title "My Art" --author maze --datatype 1 --filetype 1 31337.ans`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		file, err := sauce.Open(path, sauce.WithLenientComments())
		if err != nil {
			return err
		}

		rec := file.EnsureRecord()
		flags := cmd.Flags()

		if flags.Changed("title") {
			rec.Title, _ = flags.GetString("title")
		}
		if flags.Changed("author") {
			rec.Author, _ = flags.GetString("author")
		}
		if flags.Changed("group") {
			rec.Group, _ = flags.GetString("group")
		}
		if flags.Changed("date") {
			date, _ := flags.GetString("date")
			if _, err := sauce.ParseDate(date); err != nil {
				return err
			}
			rec.Date = date
		}
		if flags.Changed("datatype") {
			v, _ := flags.GetUint8("datatype")
			rec.DataType = sauce.DataType(v)
		}
		if flags.Changed("filetype") {
			rec.FileType, _ = flags.GetUint8("filetype")
		}
		if flags.Changed("tinfo1") {
			rec.TInfo1, _ = flags.GetUint16("tinfo1")
		}
		if flags.Changed("tinfo2") {
			rec.TInfo2, _ = flags.GetUint16("tinfo2")
		}
		if flags.Changed("tinfo3") {
			rec.TInfo3, _ = flags.GetUint16("tinfo3")
		}
		if flags.Changed("tinfo4") {
			rec.TInfo4, _ = flags.GetUint16("tinfo4")
		}
		if flags.Changed("flags") {
			rec.TFlags, _ = flags.GetUint8("flags")
		}
		if flags.Changed("tinfos") {
			rec.TInfoS, _ = flags.GetString("tinfos")
		}
		if flags.Changed("comment") {
			file.Comments, _ = flags.GetStringArray("comment")
		}

		output, _ := flags.GetString("output")
		backup, _ := flags.GetString("backup")

		var saveOpts []sauce.SaveOption
		if backup != "" {
			saveOpts = append(saveOpts, sauce.WithBackup(backup))
		}

		if output != "" {
			err = file.SaveAs(output, saveOpts...)
		} else {
			err = file.Save(saveOpts...)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Written: %s by %s\n", rec.Title, rec.Author)
		return nil
	},
}

func init() {
	setCmd.Flags().String("title", "", "Title of the file (35 chars)")
	setCmd.Flags().String("author", "", "Creator name or handle (20 chars)")
	setCmd.Flags().String("group", "", "Group or company (20 chars)")
	setCmd.Flags().String("date", "", "Creation date as YYYYMMDD")
	setCmd.Flags().Uint8("datatype", 0, "Data type code")
	setCmd.Flags().Uint8("filetype", 0, "File type code")
	setCmd.Flags().Uint16("tinfo1", 0, "Type info 1 (e.g. width)")
	setCmd.Flags().Uint16("tinfo2", 0, "Type info 2 (e.g. height)")
	setCmd.Flags().Uint16("tinfo3", 0, "Type info 3")
	setCmd.Flags().Uint16("tinfo4", 0, "Type info 4")
	setCmd.Flags().Uint8("flags", 0, "Type-dependent flags")
	setCmd.Flags().String("tinfos", "", "Type info string (e.g. font name)")
	setCmd.Flags().StringArray("comment", nil, "Comment line (repeatable, replaces existing)")
	setCmd.Flags().StringP("output", "o", "", "Write to this path instead of in place")
	setCmd.Flags().String("backup", "", "Backup suffix for the original (e.g. .bak)")
	rootCmd.AddCommand(setCmd)
}
