package postgres

import (
	"context"
	"fmt"

	"laborlink/internal/domain/review"

	"github.com/jackc/pgx/v5"
)

const reviewColumns = `id, job_id, from_user_id, to_user_id, rating, comment, created_at`

func scanReview(row pgx.Row) (review.Review, error) {
	var r review.Review
	err := row.Scan(&r.ID, &r.JobID, &r.FromUserID, &r.ToUserID, &r.Rating, &r.Comment, &r.CreatedAt)
	if err != nil {
		return review.Review{}, mapNoRows(err)
	}
	return r, nil
}

// CreateReview inserts the review and refreshes the reviewee's aggregate
// rating in the same transaction, so readers never observe a review without
// its effect on the user.
func (s *Store) CreateReview(ctx context.Context, in review.Insert) (review.Review, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return review.Review{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	r, err := scanReview(tx.QueryRow(ctx, `
		INSERT INTO reviews (job_id, from_user_id, to_user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+reviewColumns,
		in.JobID, in.FromUserID, in.ToUserID, in.Rating, in.Comment,
	))
	if err != nil {
		return review.Review{}, mapConflict(err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET
			rating = sub.avg_rating,
			review_count = sub.total
		FROM (
			SELECT round(avg(rating))::int AS avg_rating, count(*) AS total
			FROM reviews WHERE to_user_id = $1
		) AS sub
		WHERE users.id = $1`, in.ToUserID)
	if err != nil {
		return review.Review{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return review.Review{}, err
	}
	return r, nil
}

func (s *Store) GetReview(ctx context.Context, id int64) (review.Review, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	return scanReview(row)
}

func (s *Store) ListReviews(ctx context.Context, q review.Query) ([]review.Review, error) {
	var where []string
	var args []any
	cond := func(expr string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(expr, len(args)))
	}

	if q.JobID != 0 {
		cond("job_id = $%d", q.JobID)
	}
	if q.FromUserID != 0 {
		cond("from_user_id = $%d", q.FromUserID)
	}
	if q.ToUserID != 0 {
		cond("to_user_id = $%d", q.ToUserID)
	}

	query := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(where) > 0 {
		query += ` WHERE ` + joinAnd(where)
	}
	query += ` ORDER BY created_at DESC, id ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []review.Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
