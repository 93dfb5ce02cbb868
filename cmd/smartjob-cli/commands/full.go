package commands

import (
	"fmt"
	"log/slog"
	"time"

	"smartjob-scraper/lib/scrapers/smartjob"
	"smartjob-scraper/lib/serviceutil"
	"smartjob-scraper/services/resumes/scraper"

	"github.com/spf13/cobra"
)

const fullChunkSize = 10
const fullChunkRest = time.Second * 30

// cumulative snapshots land on chunk boundaries at multiples of this
const fullSnapshotInterval = 20

func init() {
	rootCmd.AddCommand(fullCmd)
}

var fullCmd = &cobra.Command{
	Use:   "full",
	Short: "Scrapes the entire listing with periodic cumulative snapshots.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		// slightly tighter pacing for the long haul
		cfg.DelayMinMs = 1500
		cfg.DelayMaxMs = 2500
		out := setupRun(cfg)
		ctx := cmd.Context()

		client := createClient(ctx, cfg)

		slog.Info("starting full scrape", "pages", lastKnownPage, "chunk_size", fullChunkSize)

		t1 := time.Now()
		var all []smartjob.Candidate
		for start := 1; start <= lastKnownPage; start += fullChunkSize {
			end := min(start+fullChunkSize-1, lastKnownPage)
			slog.Info("processing chunk", "start_page", start, "end_page", end)

			chunk := scraper.Scrape(ctx, client, out, start, end)
			all = append(all, chunk...)

			// a failed chunk save only costs its own files, the run goes on
			name := fmt.Sprintf("batch_%02d_%02d", start, end)
			if err := out.Save(ctx, chunk, name); err != nil {
				slog.Error("failed to save chunk, continuing", "name", name, "err", err)
			}
			slog.Info("chunk completed", "candidates", len(chunk), "total", len(all), "pages_done", end)

			if end%fullSnapshotInterval == 0 || end == lastKnownPage {
				name := fmt.Sprintf("progress_pages_01_%02d", end)
				if err := out.Save(ctx, all, name); err != nil {
					slog.Error("failed to save cumulative snapshot, continuing", "name", name, "err", err)
				}
			}

			if end < lastKnownPage {
				slog.Info("resting before next chunk", "seconds", int(fullChunkRest.Seconds()))
				time.Sleep(fullChunkRest)
			}
		}

		name := "smartjob_all_candidates_complete"
		if err := out.Save(ctx, all, name); err != nil {
			serviceutil.Fatal("failed to save final results", err)
		}

		summaryTable(1, lastKnownPage, len(all), time.Since(t1), name+".{json,csv}")
	},
}
