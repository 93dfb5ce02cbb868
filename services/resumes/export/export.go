package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"smartjob-scraper/lib/scrapers/smartjob"
	"smartjob-scraper/lib/telemetry"

	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("smartjob.services.resumes.export")

// csv columns lead with the fields people actually look at, anything
// else observed in the data follows alphabetically
var priorityColumns = []string{
	"name", "phone", "salary", "age", "job_category", "category_name",
	"work_experience", "education_level", "profile_url", "resume_id",
	"last_updated", "skills", "social_links", "about", "languages",
	"education", "experience",
}

type Writer struct {
	dir string
}

func NewWriter(dir string) (*Writer, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, err
	}
	return &Writer{dir: dir}, nil
}

func (w *Writer) Dir() string {
	return w.dir
}

// Save writes `<name>.json` and `<name>.csv` under the output
// directory. Records become immutable once written, both files are
// written or the call errors.
func (w *Writer) Save(ctx context.Context, candidates []smartjob.Candidate, name string) error {
	ctx, span := tracer.Start(ctx, "writer:Save")
	defer span.End()

	jsonPath := filepath.Join(w.dir, name+".json")
	if err := writeJson(jsonPath, candidates); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write json")
		return fmt.Errorf("write json: %w", err)
	}

	rows := make([]map[string]any, len(candidates))
	for i, c := range candidates {
		row, err := flatten(c)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to flatten record")
			return fmt.Errorf("flatten record %d: %w", i, err)
		}
		rows[i] = row
	}

	csvPath := filepath.Join(w.dir, name+".csv")
	if err := writeCsv(csvPath, rows); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write csv")
		return fmt.Errorf("write csv: %w", err)
	}

	slog.InfoContext(ctx, "saved candidates", "count", len(candidates), "json", jsonPath, "csv", csvPath)
	return nil
}

func writeJson(path string, candidates []smartjob.Candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	// keep the azerbaijani text readable in the output file
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if candidates == nil {
		candidates = []smartjob.Candidate{}
	}
	return enc.Encode(candidates)
}

// flatten turns a record into its attribute map through its json
// form. Attributes the record never produced carry no key at all, so
// their csv cells come out blank.
func flatten(c smartjob.Candidate) (map[string]any, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, err
	}
	return row, nil
}

func columnOrder(rows []map[string]any) []string {
	seen := map[string]bool{}
	for _, row := range rows {
		for k := range row {
			seen[k] = true
		}
	}

	var columns []string
	for _, c := range priorityColumns {
		if seen[c] {
			columns = append(columns, c)
			delete(seen, c)
		}
	}

	var rest []string
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)

	return append(columns, rest...)
}

func writeCsv(path string, rows []map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	columns := columnOrder(rows)

	wr := csv.NewWriter(f)
	if err := wr.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			value, ok := row[col]
			if !ok {
				continue
			}
			record[i] = cellValue(value)
		}
		if err := wr.Write(record); err != nil {
			return err
		}
	}

	wr.Flush()
	return wr.Error()
}

// scalar attributes are written as plain text, anything structured
// becomes an embedded json string
func cellValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(raw)
}
