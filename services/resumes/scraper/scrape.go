package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"smartjob-scraper/lib/scrapers/smartjob"
	"smartjob-scraper/lib/telemetry"
	"smartjob-scraper/services/resumes/export"
)

var tracer = telemetry.Tracer("smartjob.services.resumes.scraper")

// checkpoint the accumulator every this many pages
const checkpointInterval = 5

// Scrape walks an inclusive, 1-indexed page range of the resume
// listing, enriching every candidate from its profile page. Failed
// pages and failed profiles are logged and skipped, the run itself
// never aborts. When a writer is given, the accumulated records are
// checkpointed every 5th page under a page-range-derived name.
func Scrape(ctx context.Context, client *smartjob.Client, out *export.Writer, startPage, endPage int) []smartjob.Candidate {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	var all []smartjob.Candidate

	for page := startPage; page <= endPage; page++ {
		slog.InfoContext(ctx, "scraping page", "page", page, "end_page", endPage)

		doc, err := client.FetchDocument(ctx, client.ListingUrl(page))
		if err != nil {
			slog.ErrorContext(ctx, "skipping listing page", "page", page, "err", err)
			continue
		}

		candidates := smartjob.ExtractListing(ctx, doc, client.BaseUrl)
		slog.InfoContext(ctx, "found candidates", "page", page, "count", len(candidates))

		for i := range candidates {
			cand := &candidates[i]
			slog.InfoContext(
				ctx, "processing candidate",
				"page", page,
				"index", i+1,
				"total", len(candidates),
				"name", cand.Name,
			)

			client.Enrich(ctx, cand)
			all = append(all, *cand)

			client.Pace()
		}

		if out != nil && page%checkpointInterval == 0 {
			name := fmt.Sprintf("candidates_pages_%d-%d", startPage, page)
			if err := out.Save(ctx, all, name); err != nil {
				slog.ErrorContext(ctx, "failed to write checkpoint", "name", name, "err", err)
			}
		}

		client.Pace()
	}

	return all
}
