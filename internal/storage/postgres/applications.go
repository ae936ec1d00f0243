package postgres

import (
	"context"
	"fmt"

	"laborlink/internal/domain/application"

	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, job_id, worker_id, cover_letter, status, created_at`

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.WorkerID, &a.CoverLetter, &a.Status, &a.CreatedAt)
	if err != nil {
		return application.Application{}, mapNoRows(err)
	}
	return a, nil
}

func (s *Store) CreateApplication(ctx context.Context, in application.Insert) (application.Application, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO applications (job_id, worker_id, cover_letter)
		VALUES ($1, $2, $3)
		RETURNING `+applicationColumns,
		in.JobID, in.WorkerID, in.CoverLetter,
	)
	a, err := scanApplication(row)
	if err != nil {
		return application.Application{}, mapConflict(err)
	}
	return a, nil
}

func (s *Store) GetApplication(ctx context.Context, id int64) (application.Application, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (s *Store) UpdateApplication(ctx context.Context, id int64, upd application.Update) (application.Application, error) {
	if upd.Status == nil {
		return s.GetApplication(ctx, id)
	}
	row := s.pool.QueryRow(ctx, `
		UPDATE applications SET status = $1 WHERE id = $2
		RETURNING `+applicationColumns,
		*upd.Status, id,
	)
	return scanApplication(row)
}

func (s *Store) ListApplications(ctx context.Context, q application.Query) ([]application.Application, error) {
	var where []string
	var args []any
	cond := func(expr string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(expr, len(args)))
	}

	if q.JobID != 0 {
		cond("job_id = $%d", q.JobID)
	}
	if q.WorkerID != 0 {
		cond("worker_id = $%d", q.WorkerID)
	}
	if q.Status != "" {
		cond("status = $%d", q.Status)
	}

	query := `SELECT ` + applicationColumns + ` FROM applications`
	if len(where) > 0 {
		query += ` WHERE ` + joinAnd(where)
	}
	query += ` ORDER BY created_at DESC, id ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []application.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
