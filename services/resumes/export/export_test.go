package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"smartjob-scraper/lib/scrapers/smartjob"

	"github.com/stretchr/testify/require"
)

func sampleCandidates() []smartjob.Candidate {
	return []smartjob.Candidate{
		{
			Name:       "Əli Məmmədov",
			ProfileUrl: "https://smartjob.az/resumes/12345",
			ResumeId:   "12345",
			Salary:     "1500 AZN",
			SocialLinks: []smartjob.SocialLink{
				{Platform: "github", Url: "https://github.com/elimemmedov"},
			},
			About:      "Təcrübəli mühasib.",
			Languages:  []smartjob.Language{{Language: "English", Level: "Fluent"}},
			Education:  []smartjob.Education{},
			Experience: []smartjob.Experience{},
			Skills:     []string{"1C", "Excel"},
			Phone:      "+994 50 123 45 67",
		},
		{
			// listing-only record, detail sections still nil
			Name:        "Leyla Quliyeva",
			ProfileUrl:  "https://smartjob.az/resumes/23456",
			ResumeId:    "23456",
			SocialLinks: []smartjob.SocialLink{},
		},
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.Equal(t, dir, w.Dir())

	candidates := sampleCandidates()
	require.NoError(t, w.Save(context.Background(), candidates, "sample"))

	raw, err := os.ReadFile(filepath.Join(dir, "sample.json"))
	require.NoError(t, err)

	// non-ascii text stays literal, never \u-escaped
	require.Contains(t, string(raw), "Əli Məmmədov")
	require.NotContains(t, string(raw), `\u`)
	// never-enriched sections drop their keys rather than render null
	require.NotContains(t, string(raw), "null")
	// pretty-printed
	require.Contains(t, string(raw), "\n  {")

	var decoded []smartjob.Candidate
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, candidates, decoded)

	f, err := os.Open(filepath.Join(dir, "sample.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	require.Equal(t, "name", header[0])

	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}

	require.Equal(t, "Əli Məmmədov", rows[1][col["name"]])
	require.Equal(t, "1500 AZN", rows[1][col["salary"]])

	// list attributes are embedded json cells
	var skills []string
	require.NoError(t, json.Unmarshal([]byte(rows[1][col["skills"]]), &skills))
	require.Equal(t, []string{"1C", "Excel"}, skills)

	var links []smartjob.SocialLink
	require.NoError(t, json.Unmarshal([]byte(rows[1][col["social_links"]]), &links))
	require.Len(t, links, 1)

	// never-enriched sections are blank cells, not "null"
	require.Equal(t, "", rows[2][col["skills"]])
	require.Equal(t, "", rows[2][col["languages"]])
	// enriched-but-empty sections keep their json form
	require.Equal(t, "[]", rows[1][col["education"]])
}

func TestSaveEmptySet(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	require.NoError(t, w.Save(context.Background(), nil, "empty"))

	raw, err := os.ReadFile(filepath.Join(dir, "empty.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(raw)))
}

func TestColumnOrder(t *testing.T) {
	rows := []map[string]any{
		{"name": "x", "salary": "1", "notes": "hello", "about": "y"},
		{"name": "z", "age": "30", "zebra": "?"},
	}

	// priority columns in their fixed order, then extras alphabetically
	require.Equal(
		t,
		[]string{"name", "salary", "age", "about", "notes", "zebra"},
		columnOrder(rows),
	)
}

func TestFlattenOmitsMissingAttributes(t *testing.T) {
	row, err := flatten(smartjob.Candidate{Name: "x", ProfileUrl: "u"})
	require.NoError(t, err)

	_, hasSkills := row["skills"]
	require.False(t, hasSkills)
	_, hasSalary := row["salary"]
	require.False(t, hasSalary)
	require.Equal(t, "x", row["name"])
}
