package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"smartjob-scraper/lib/configutil"
	configsqlite "smartjob-scraper/lib/configutil/sqlite"
	"smartjob-scraper/lib/restyutil"
	"smartjob-scraper/lib/scrapers/smartjob"
	"smartjob-scraper/lib/serviceutil"
	"smartjob-scraper/lib/telemetry"
	"smartjob-scraper/services/resumes/export"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

const defaultBaseUrl = "https://smartjob.az"

// the listing is known to run out of pages here
const lastKnownPage = 93

var (
	verbose   *bool
	outputDir *string
)

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level.")
	outputDir = rootCmd.PersistentFlags().String("output-dir", "", `Directory to write results to (default "scraped_data").`)
}

var rootCmd = &cobra.Command{
	Use:   "smartjob-cli",
	Short: "smartjob-cli scrapes the smartjob.az resume listing into JSON/CSV.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type Config struct {
	BaseUrl    string              `json:"base_url"`
	OutputDir  string              `json:"output_dir"`
	DelayMinMs int                 `json:"delay_min_ms"`
	DelayMaxMs int                 `json:"delay_max_ms"`
	Database   configsqlite.Struct `json:"database"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		serviceutil.Fatal("failed to read config", err)
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = defaultBaseUrl
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "scraped_data"
	}
	if cfg.DelayMinMs == 0 {
		cfg.DelayMinMs = 1000
	}
	if cfg.DelayMaxMs == 0 {
		cfg.DelayMaxMs = 3000
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	return cfg
}

// setupRun creates the output directory and points the log mirror at
// <output_dir>/scraper.log.
func setupRun(cfg Config) *export.Writer {
	writer, err := export.NewWriter(cfg.OutputDir)
	if err != nil {
		serviceutil.Fatal("failed to create output directory", err)
	}
	telemetry.InitSlog(*verbose, filepath.Join(cfg.OutputDir, "scraper.log"))
	return writer
}

func createClient(ctx context.Context, cfg Config) *smartjob.Client {
	client, err := smartjob.NewClient(ctx, smartjob.ClientOptions{
		BaseUrl:  cfg.BaseUrl,
		DelayMin: time.Duration(cfg.DelayMinMs) * time.Millisecond,
		DelayMax: time.Duration(cfg.DelayMaxMs) * time.Millisecond,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize smartjob client", err)
	}
	if *verbose {
		client.SetRestyInstrumentOutput(
			restyutil.NewFilesystemOutput(filepath.Join(cfg.OutputDir, "resty")),
		)
	}
	return client
}

func summaryTable(startPage, endPage, count int, elapsed time.Duration, files string) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Pages", "Candidates", "Elapsed", "Output"})
	t.AppendRow(table.Row{
		fmt.Sprintf("%d-%d", startPage, endPage),
		count,
		elapsed.Round(time.Second),
		files,
	})
	t.Render()
}
