package postgres

import "context"

// schemaStatements creates the five entity tables. Columns follow the wire
// names used by the HTTP layer; skills are native text arrays. The unique
// constraints back the duplicate checks the memory driver does under its
// lock, so both drivers reject the same creates.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id           BIGSERIAL PRIMARY KEY,
		username     TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		email        TEXT NOT NULL,
		full_name    TEXT NOT NULL,
		user_type    TEXT NOT NULL,
		location     TEXT NOT NULL DEFAULT '',
		bio          TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		skills       TEXT[] NOT NULL DEFAULT '{}',
		avatar       TEXT NOT NULL DEFAULT '',
		title        TEXT NOT NULL DEFAULT '',
		rating       INTEGER,
		review_count INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id           BIGSERIAL PRIMARY KEY,
		employer_id  BIGINT NOT NULL REFERENCES users(id),
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		location     TEXT NOT NULL DEFAULT '',
		job_type     TEXT NOT NULL DEFAULT '',
		service_type TEXT NOT NULL DEFAULT '',
		rate         TEXT NOT NULL DEFAULT '',
		skills       TEXT[] NOT NULL DEFAULT '{}',
		status       TEXT NOT NULL DEFAULT 'open',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id           BIGSERIAL PRIMARY KEY,
		job_id       BIGINT NOT NULL REFERENCES jobs(id),
		worker_id    BIGINT NOT NULL REFERENCES users(id),
		cover_letter TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'pending',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (job_id, worker_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id           BIGSERIAL PRIMARY KEY,
		job_id       BIGINT NOT NULL REFERENCES jobs(id),
		from_user_id BIGINT NOT NULL REFERENCES users(id),
		to_user_id   BIGINT NOT NULL REFERENCES users(id),
		rating       INTEGER NOT NULL,
		comment      TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (job_id, from_user_id, to_user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id           BIGSERIAL PRIMARY KEY,
		from_user_id BIGINT NOT NULL REFERENCES users(id),
		to_user_id   BIGINT NOT NULL REFERENCES users(id),
		content      TEXT NOT NULL,
		read         BOOLEAN NOT NULL DEFAULT FALSE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
