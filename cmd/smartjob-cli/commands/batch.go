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

var (
	batchSize      *int
	batchStartPage *int
	batchEndPage   *int
	batchDelay     *int
)

func init() {
	batchSize = batchCmd.Flags().Int("batch-size", 10, "Pages per batch.")
	batchStartPage = batchCmd.Flags().Int("start-page", 1, "Starting page number.")
	batchEndPage = batchCmd.Flags().Int("end-page", lastKnownPage, "Ending page number.")
	batchDelay = batchCmd.Flags().Int("batch-delay", 30, "Seconds to wait between batches.")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch [--batch-size N] [--start-page N] [--end-page N] [--batch-delay seconds]",
	Short: "Scrapes a page range in fixed-size chunks, saving each chunk separately.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		out := setupRun(cfg)
		ctx := cmd.Context()

		client := createClient(ctx, cfg)

		slog.Info(
			"starting batch scrape",
			"start_page", *batchStartPage,
			"end_page", *batchEndPage,
			"batch_size", *batchSize,
			"batch_delay_s", *batchDelay,
		)

		t1 := time.Now()
		var total []smartjob.Candidate
		for start := *batchStartPage; start <= *batchEndPage; start += *batchSize {
			end := min(start+*batchSize-1, *batchEndPage)
			slog.Info("processing batch", "start_page", start, "end_page", end)

			batch := scraper.Scrape(ctx, client, out, start, end)
			total = append(total, batch...)

			name := fmt.Sprintf("batch_pages_%d_%d", start, end)
			if err := out.Save(ctx, batch, name); err != nil {
				serviceutil.Fatal("failed to save batch", err)
			}
			slog.Info("batch completed", "candidates", len(batch), "total", len(total))

			if end < *batchEndPage {
				slog.Info("waiting before next batch", "seconds", *batchDelay)
				time.Sleep(time.Duration(*batchDelay) * time.Second)
			}
		}

		name := fmt.Sprintf("all_candidates_pages_%d_%d", *batchStartPage, *batchEndPage)
		if err := out.Save(ctx, total, name); err != nil {
			serviceutil.Fatal("failed to save combined results", err)
		}

		summaryTable(*batchStartPage, *batchEndPage, len(total), time.Since(t1), name+".{json,csv}")
	},
}
