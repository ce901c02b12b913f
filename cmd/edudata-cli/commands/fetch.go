package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"edudata-client/lib/edudata"
	"edudata-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

var fetchYear *int
var fetchGrade *int
var fetchRace *bool
var fetchSex *bool
var fetchDisability *bool
var fetchLep *bool
var fetchFilters *[]string
var fetchOutput *bool

func init() {
	fetchYear = fetchCmd.Flags().Int("year", 2013, "Academic year of the requested records.")
	fetchGrade = fetchCmd.Flags().Int("grade", 99, "Grade level, for topics recorded per grade. 99 means total.")
	fetchRace = fetchCmd.Flags().Bool("race", false, "Break results down by race.")
	fetchSex = fetchCmd.Flags().Bool("sex", false, "Break results down by sex.")
	fetchDisability = fetchCmd.Flags().Bool("disability", false, "Break results down by disability.")
	fetchLep = fetchCmd.Flags().Bool("lep", false, "Break results down by limited English proficiency.")
	fetchFilters = fetchCmd.Flags().StringArray("filter", nil, "Column filter in key=value form, may be repeated.")
	fetchOutput = fetchCmd.Flags().Bool("output", false, "Write the response to a timestamped file under json/ instead of printing it.")
	rootCmd.AddCommand(fetchCmd)
}

// parseFilters types each value the way the portal reads them, ints
// and floats stay numeric, anything else passes through as a string.
func parseFilters(pairs []string) (edudata.Filters, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	filters := edudata.Filters{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", pair)
		}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			filters[key] = edudata.Int(n)
			continue
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			filters[key] = edudata.Float(f)
			continue
		}
		filters[key] = edudata.String(value)
	}
	return filters, nil
}

func emit(body map[string]any, writeFile bool) {
	rendered, err := json.MarshalIndent(body, "", "    ")
	if err != nil {
		serviceutil.Fatal("failed to render response", err)
	}

	if !writeFile {
		fmt.Println(string(rendered))
		return
	}

	err = os.MkdirAll("json", 0755)
	if err != nil {
		serviceutil.Fatal("failed to create output directory", err)
	}
	path := filepath.Join("json", fmt.Sprintf(
		"response_%s.json",
		time.Now().Format("20060102_150405"),
	))
	err = os.WriteFile(path, rendered, 0644)
	if err != nil {
		serviceutil.Fatal("failed to write output file", err)
	}
	slog.Info("data written", "path", path)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <topic> [--year <year>] [--race] [--sex] [--filter key=value]... [--output]",
	Short: "Fetch records for one topic, see `edudata-cli topics` for the topic list.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		topic := edudata.Topic(args[0])

		filters, err := parseFilters(*fetchFilters)
		if err != nil {
			serviceutil.Fatal("failed to parse filters", err)
		}

		client := createClient()
		body, err := client.Get(cmd.Context(), topic, edudata.Request{
			Year:  *fetchYear,
			Grade: *fetchGrade,
			Segments: edudata.Segments{
				Race:       *fetchRace,
				Sex:        *fetchSex,
				Disability: *fetchDisability,
				LEP:        *fetchLep,
			},
			Filters: filters,
		})
		if err != nil {
			serviceutil.Fatal("failed to fetch records", err)
		}

		emit(body, *fetchOutput)
	},
}
