package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	configsqlite "smartjob-scraper/lib/configutil/sqlite"
	"smartjob-scraper/lib/scrapers/smartjob"
	"smartjob-scraper/lib/serviceutil"
	"smartjob-scraper/services/resumes/db"
	"smartjob-scraper/services/resumes/scraper"

	"github.com/spf13/cobra"
)

var (
	scrapeStartPage *int
	scrapePages     *int
	scrapeDb        *string
)

func init() {
	scrapeStartPage = scrapeCmd.Flags().Int("start-page", 1, "Starting page number.")
	scrapePages = scrapeCmd.Flags().Int("pages", 5, "Number of pages to scrape.")
	scrapeDb = scrapeCmd.Flags().String("db", "", "Optional sqlite file to archive results into.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--start-page N] [--pages N] [--db <path/to/archive.db>]",
	Short: "Scrapes a run of listing pages and saves one final result set.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		out := setupRun(cfg)
		ctx := cmd.Context()

		start := *scrapeStartPage
		end := min(start+*scrapePages-1, lastKnownPage)

		slog.Info(
			"starting scrape",
			"start_page", start,
			"end_page", end,
			"delay_min_ms", cfg.DelayMinMs,
			"delay_max_ms", cfg.DelayMaxMs,
			"output_dir", cfg.OutputDir,
		)

		client := createClient(ctx, cfg)

		t1 := time.Now()
		candidates := scraper.Scrape(ctx, client, out, start, end)
		elapsed := time.Since(t1)

		name := fmt.Sprintf("smartjob_candidates_pages_%d-%d", start, end)
		if err := out.Save(ctx, candidates, name); err != nil {
			serviceutil.Fatal("failed to save results", err)
		}

		// the flag wins over the config file
		dbPath := cfg.Database.File
		if *scrapeDb != "" {
			dbPath = *scrapeDb
		}
		if dbPath != "" {
			archiveCandidates(ctx, dbPath, candidates)
		}

		summaryTable(start, end, len(candidates), elapsed, name+".{json,csv}")
	},
}

func archiveCandidates(ctx context.Context, path string, candidates []smartjob.Candidate) {
	conn, err := configsqlite.Struct{File: path}.OpenDB(db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open archive db", err)
	}
	defer conn.Close()

	store := db.New(conn)
	if err := store.ArchiveCandidates(ctx, candidates); err != nil {
		serviceutil.Fatal("failed to archive candidates", err)
	}
	slog.Info("archived candidates", "count", len(candidates), "db", path)
}
