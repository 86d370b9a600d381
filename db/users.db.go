package db

import (
	"context"
	"database/sql"
	"errors"
)

const (
	createUserQuery = "INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, username, created_at"

	userByCredentialsQuery = "SELECT id, username, created_at FROM users WHERE username = $1 AND password = $2"
)

// CreateUser stores a new user. The password column holds the value
// verbatim (no hashing, kept for compatibility with existing rows); the
// returned record never carries it.
func (d *DB) CreateUser(ctx context.Context, username, password string) (*User, error) {
	row := d.Db.QueryRowContext(ctx, createUserQuery, username, password)

	u := &User{}
	err := row.Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsertFailed
		}
		return nil, err
	}
	return u, nil
}

// FetchUserByCredentials returns the single user matching both username
// and password exactly, or nil. More than one match means the lookup is
// ambiguous and nobody gets logged in.
func (d *DB) FetchUserByCredentials(ctx context.Context, username, password string) (*User, error) {
	rows, err := d.Db.QueryContext(ctx, userByCredentialsQuery, username, password)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var u *User
	for rows.Next() {
		if u != nil {
			return nil, nil
		}
		u = &User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return u, nil
}
