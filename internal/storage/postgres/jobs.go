package postgres

import (
	"context"
	"fmt"

	"laborlink/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, employer_id, title, description, location, job_type,
	service_type, rate, skills, status, created_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location, &j.JobType,
		&j.ServiceType, &j.Rate, &j.Skills, &j.Status, &j.CreatedAt,
	)
	if err != nil {
		return job.Job{}, mapNoRows(err)
	}
	return j, nil
}

func (s *Store) CreateJob(ctx context.Context, in job.Insert) (job.Job, error) {
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO jobs (employer_id, title, description, location, job_type,
			service_type, rate, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+jobColumns,
		in.EmployerID, in.Title, in.Description, in.Location, in.JobType,
		in.ServiceType, in.Rate, skills,
	)
	return scanJob(row)
}

func (s *Store) GetJob(ctx context.Context, id int64) (job.Job, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (s *Store) UpdateJob(ctx context.Context, id int64, upd job.Update) (job.Job, error) {
	var set []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.JobType != nil {
		add("job_type", *upd.JobType)
	}
	if upd.ServiceType != nil {
		add("service_type", *upd.ServiceType)
	}
	if upd.Rate != nil {
		add("rate", *upd.Rate)
	}
	if upd.Skills != nil {
		add("skills", upd.Skills)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if len(set) == 0 {
		return s.GetJob(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		joinSet(set), len(args), jobColumns)
	return scanJob(s.pool.QueryRow(ctx, query, args...))
}

func (s *Store) ListJobs(ctx context.Context, q job.Query) ([]job.Job, error) {
	var where []string
	var args []any
	cond := func(expr string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(expr, len(args)))
	}

	if q.EmployerID != 0 {
		cond("employer_id = $%d", q.EmployerID)
	}
	if q.JobType != "" {
		cond("job_type = $%d", q.JobType)
	}
	if q.Location != "" {
		cond("location = $%d", q.Location)
	}
	if q.Status != "" {
		cond("status = $%d", q.Status)
	}
	if len(q.Skills) > 0 {
		cond("skills && $%d", q.Skills)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	if len(where) > 0 {
		query += ` WHERE ` + joinAnd(where)
	}
	query += ` ORDER BY created_at DESC, id ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
