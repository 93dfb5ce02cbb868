package smartjob

import (
	"context"
	"log/slog"
	"strings"

	"smartjob-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Enrich fetches a candidate's profile page and merges the detail
// sections into the record. Partial data is acceptable: without a
// profile url, or when the fetch fails, the record is left as-is.
func (c *Client) Enrich(ctx context.Context, cand *Candidate) {
	if cand.ProfileUrl == "" {
		return
	}

	doc, err := c.FetchDocument(ctx, cand.ProfileUrl)
	if err != nil {
		slog.WarnContext(ctx, "keeping listing-only candidate", "name", cand.Name, "url", cand.ProfileUrl, "err", err)
		return
	}

	ExtractDetail(ctx, doc, cand)
}

// ExtractDetail reads every profile section into the candidate. Each
// section is independent, a malformed or absent one never blocks the
// others. Running it twice over the same document is a no-op the
// second time, sections replace rather than append.
func ExtractDetail(ctx context.Context, doc *goquery.Document, cand *Candidate) {
	ctx, span := tracer.Start(ctx, "ExtractDetail")
	defer span.End()

	if about := extractAbout(doc); about != "" {
		cand.About = about
	}
	cand.Languages = extractLanguages(doc)
	cand.Education = extractEducation(doc)
	cand.Experience = extractExperience(doc)
	cand.Skills = extractSkills(doc)
	extractSidebarFacts(doc, cand)
}

// sectionHeading finds the h2 whose text matches exactly.
func sectionHeading(doc *goquery.Document, text string) *goquery.Selection {
	return doc.Find(selDetailHeading).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return htmlutil.SelectionText(s) == text
	}).First()
}

func extractAbout(doc *goquery.Document) string {
	heading := sectionHeading(doc, headingAbout)
	return htmlutil.SelectionText(htmlutil.NextMatch(doc, heading, selAboutText))
}

func extractLanguages(doc *goquery.Document) []Language {
	languages := []Language{}

	heading := sectionHeading(doc, headingLanguages)
	first := htmlutil.NextMatch(doc, heading, "div")
	first.NextAll().Filter("div").Each(func(_ int, item *goquery.Selection) {
		text := htmlutil.SelectionText(item)
		if !strings.Contains(text, languageSeparator) {
			return
		}
		// split at the first separator only, the level keeps the rest
		parts := strings.SplitN(text, languageSeparator, 2)
		languages = append(languages, Language{
			Language: strings.TrimSpace(parts[0]),
			Level:    strings.TrimSpace(parts[1]),
		})
	})

	return languages
}

func extractEducation(doc *goquery.Document) []Education {
	education := []Education{}

	list := htmlutil.NextMatch(doc, sectionHeading(doc, headingEducation), selSectionList)
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		var e Education
		e.Level = htmlutil.SelectionText(item.Find("div").First())

		title := item.Find(selEntryTitle).First()
		e.Institution = htmlutil.SelectionText(title.Find("a").First())
		e.Year = htmlutil.SelectionText(title.Find(selEntryEst).First())

		if s := htmlutil.SelectionText(item.Find("strong").First()); strings.Contains(s, "/") {
			parts := strings.Split(s, "/")
			e.Faculty = strings.TrimSpace(parts[0])
			e.Field = strings.TrimSpace(parts[1])
		}

		if e != (Education{}) {
			education = append(education, e)
		}
	})

	return education
}

func extractExperience(doc *goquery.Document) []Experience {
	experience := []Experience{}

	list := htmlutil.NextMatch(doc, sectionHeading(doc, headingExperience), selSectionList)
	list.Find("li").Each(func(_ int, item *goquery.Selection) {
		var e Experience

		title := item.Find(selEntryTitle).First()
		e.Company = htmlutil.SelectionText(title.Find("a").First())
		e.Duration = htmlutil.SelectionText(title.Find(selEntryEst).First())
		e.Position = htmlutil.SelectionText(item.Find("strong").First())

		if e != (Experience{}) {
			experience = append(experience, e)
		}
	})

	return experience
}

func extractSkills(doc *goquery.Document) []string {
	skills := []string{}

	doc.Find(selSkillsSidebar).First().Find("a").Each(func(_ int, link *goquery.Selection) {
		label := link.Find("span").First()
		if label.Length() == 0 {
			return
		}
		skills = append(skills, htmlutil.SelectionText(label))
	})

	return skills
}

func extractSidebarFacts(doc *goquery.Document, cand *Candidate) {
	doc.Find(selFactsSidebar).First().Find("li").Each(func(_ int, item *goquery.Selection) {
		key := htmlutil.SelectionText(item.Find("h5").First())
		value := htmlutil.SelectionText(item.Find("span").First())
		if key == "" || value == "" {
			return
		}

		// first label match wins per item, checked in a fixed order
		switch {
		case strings.Contains(key, labelPhone):
			cand.Phone = value
		case strings.Contains(key, labelAge):
			cand.Age = value
		case strings.Contains(key, labelWorkExperience):
			cand.WorkExperience = value
		case strings.Contains(key, labelEducationLevel):
			cand.EducationLevel = value
		}
	})
}
