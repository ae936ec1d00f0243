package postgres

import (
	"context"
	"fmt"

	"laborlink/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, password_hash, email, full_name, user_type,
	location, bio, phone, skills, avatar, title, rating, review_count`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName, &u.Type,
		&u.Location, &u.Bio, &u.Phone, &u.Skills, &u.Avatar, &u.Title,
		&u.Rating, &u.ReviewCount,
	)
	if err != nil {
		return user.User{}, mapNoRows(err)
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, in user.Insert) (user.User, error) {
	skills := in.Skills
	if skills == nil {
		skills = []string{}
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, email, full_name, user_type,
			location, bio, phone, skills, avatar, title)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+userColumns,
		in.Username, in.PasswordHash, in.Email, in.FullName, in.Type,
		in.Location, in.Bio, in.Phone, skills, in.Avatar, in.Title,
	)
	u, err := scanUser(row)
	if err != nil {
		return user.User{}, mapConflict(err)
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (user.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (s *Store) UpdateUser(ctx context.Context, id int64, upd user.Update) (user.User, error) {
	var set []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Skills != nil {
		add("skills", upd.Skills)
	}
	if upd.Avatar != nil {
		add("avatar", *upd.Avatar)
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if len(set) == 0 {
		return s.GetUser(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		joinSet(set), len(args), userColumns)
	return scanUser(s.pool.QueryRow(ctx, query, args...))
}

func (s *Store) ListWorkers(ctx context.Context) ([]user.User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE user_type = $1
		ORDER BY id ASC`, user.TypeWorker)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func (s *Store) TopRatedWorkers(ctx context.Context, limit int) ([]user.User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users
		WHERE user_type = $1
		ORDER BY COALESCE(rating, 0) DESC, id ASC
		LIMIT $2`, user.TypeWorker, limit)
	if err != nil {
		return nil, err
	}
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]user.User, error) {
	defer rows.Close()

	out := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
