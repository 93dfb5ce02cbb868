package main

import (
	"context"

	"smartjob-scraper/cmd/smartjob-cli/commands"
	"smartjob-scraper/lib/serviceutil"
	"smartjob-scraper/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false, "")
	telemetry.SetupFromEnv(context.Background(), "smartjob-cli")
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
