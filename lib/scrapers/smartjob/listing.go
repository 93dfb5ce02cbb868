package smartjob

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"smartjob-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ExtractListing walks every candidate card in a search results page.
// Field lookups are independent and best-effort, a card only has to
// produce a name and a profile url to be kept.
func ExtractListing(ctx context.Context, doc *goquery.Document, base *url.URL) []Candidate {
	ctx, span := tracer.Start(ctx, "ExtractListing")
	defer span.End()

	var candidates []Candidate
	doc.Find(selListingCard).Each(func(i int, card *goquery.Selection) {
		c := extractCard(ctx, card, base)
		if c.Name == "" || c.ProfileUrl == "" {
			slog.DebugContext(ctx, "skipping card without name or profile url", "index", i)
			return
		}
		candidates = append(candidates, c)
		span.AddEvent("candidate", trace.WithAttributes(
			attribute.String("name", c.Name),
			attribute.String("url", c.ProfileUrl),
		))
	})
	return candidates
}

func extractCard(ctx context.Context, card *goquery.Selection, base *url.URL) Candidate {
	c := Candidate{SocialLinks: []SocialLink{}}

	nameLink := card.Find(selCardName).First()
	if href, ok := nameLink.Attr("href"); ok {
		c.Name = htmlutil.SelectionText(nameLink)
		c.ProfileUrl = absoluteUrl(base, href)
		c.ResumeId = resumeId(href)
	}

	if icon := card.Find(selCardJobIcon); icon.Length() > 0 {
		c.JobCategory = htmlutil.SelectionText(icon.First().Parent())
	}

	c.CategoryName = htmlutil.SelectionText(card.Find(selCardCategory).First())

	if icon := card.Find(selCardUpdatedIcon); icon.Length() > 0 {
		raw := htmlutil.SelectionText(icon.First().Parent())
		c.LastUpdated = strings.TrimSpace(strings.ReplaceAll(raw, lastUpdatedPrefix, ""))
	}

	c.Salary = htmlutil.SelectionText(card.Find(selCardSalary).First())

	for _, a := range htmlutil.GetAnchors(ctx, card.Find(selCardSocial)) {
		if a.Href == "" {
			continue
		}
		c.SocialLinks = append(c.SocialLinks, SocialLink{
			Platform: ClassifySocialUrl(a.Href),
			Url:      a.Href,
		})
	}

	return c
}

// ClassifySocialUrl tags a social anchor by its url. The checks are
// mutually exclusive and run in a fixed order.
func ClassifySocialUrl(href string) string {
	switch {
	case strings.Contains(href, "linkedin"):
		return "linkedin"
	case strings.Contains(href, "github"):
		return "github"
	default:
		return "other"
	}
}

func absoluteUrl(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// the resume id is the final segment of the profile path
func resumeId(href string) string {
	i := strings.LastIndex(href, "/")
	if i < 0 {
		return ""
	}
	return href[i+1:]
}
