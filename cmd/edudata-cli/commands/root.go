package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"edudata-client/lib/configutil"
	"edudata-client/lib/edudata"
	"edudata-client/lib/restyutil"
	"edudata-client/lib/serviceutil"
	"edudata-client/lib/telemetry"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl string `json:"base_url"`
}

var verbose *bool
var debugHttp *bool

var rootCmd = &cobra.Command{
	Use:   "edudata-cli",
	Short: "edudata-cli fetches school records from the Urban Institute education data portal.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
		telemetry.InstrumentPerfStats(cmd.Context(), time.Second*30)
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	debugHttp = rootCmd.PersistentFlags().Bool("debug-http", false, "Dump request/response pairs to .debug/http.")
}

func createClient() *edudata.Client {
	cfg, err := configutil.ReadConfig[Config]("edudata.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	var output restyutil.InstrumentOutput
	if *debugHttp {
		output = restyutil.NewFilesystemOutput(".debug/http")
	}

	return edudata.NewClient(edudata.ClientOptions{
		BaseUrl: cfg.BaseUrl,
		Output:  output,
	})
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
