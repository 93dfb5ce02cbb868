// Package db archives scraped candidate records in sqlite. Rows are
// append-only, rerunning a page range archives its candidates again.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"smartjob-scraper/lib/scrapers/smartjob"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) Store {
	return Store{db: db}
}

func (s Store) insert(ctx context.Context, tx *sql.Tx, c smartjob.Candidate) error {
	record, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO candidates (resume_id, name, profile_url, record, scraped_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ResumeId, c.Name, c.ProfileUrl, string(record), time.Now().Unix(),
	)
	return err
}

// ArchiveCandidates appends every record in one transaction.
func (s Store) ArchiveCandidates(ctx context.Context, candidates []smartjob.Candidate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range candidates {
		if err := s.insert(ctx, tx, c); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s Store) CountCandidates(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count)
	return count, err
}
