package commands

import (
	"edudata-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

var summaryFilters *[]string
var summaryOutput *bool

func init() {
	summaryFilters = summaryCmd.Flags().StringArray("filter", nil, "Column filter in key=value form, may be repeated.")
	summaryOutput = summaryCmd.Flags().Bool("output", false, "Write the response to a timestamped file under json/ instead of printing it.")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary <var> <stat> <by> [--filter key=value]...",
	Short: "Fetch summary statistics over the CCD directory, e.g. summary enrollment stddev virtual.",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		filters, err := parseFilters(*summaryFilters)
		if err != nil {
			serviceutil.Fatal("failed to parse filters", err)
		}

		client := createClient()
		body, err := client.GetCCDSummary(cmd.Context(), args[0], args[1], args[2], filters)
		if err != nil {
			serviceutil.Fatal("failed to fetch summary", err)
		}

		emit(body, *summaryOutput)
	},
}
