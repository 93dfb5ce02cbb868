package db

const Schema = `
CREATE TABLE IF NOT EXISTS candidates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    resume_id TEXT,
    name TEXT NOT NULL,
    profile_url TEXT NOT NULL,
    record TEXT NOT NULL,
    scraped_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_resume_id ON candidates(resume_id);
`
