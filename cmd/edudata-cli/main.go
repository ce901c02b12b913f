package main

import (
	"context"

	"edudata-client/cmd/edudata-cli/commands"
	"edudata-client/lib/serviceutil"
	"edudata-client/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	tel, err := telemetry.SetupFromEnv(ctx, "edudata-cli")
	if err == nil {
		defer tel.Shutdown(context.Background())
	}
	commands.ExecuteContext(ctx)
}
