package commands

import (
	"os"
	"strings"

	"edudata-client/lib/edudata"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the known topics and the segment combinations each accepts.",
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable()
		t.AppendHeader(table.Row{"Topic", "Graded", "Legal segment combinations"})

		for _, topic := range edudata.Topics() {
			legal, err := edudata.LegalSegments(topic)
			if err != nil {
				continue
			}
			combos := make([]string, len(legal))
			for i, s := range legal {
				combos[i] = s.String()
			}

			graded := ""
			if edudata.NeedsGrade(topic) {
				graded = "yes"
			}
			t.AppendRow(table.Row{topic, graded, strings.Join(combos, ", ")})
		}
		t.Render()
	},
}
