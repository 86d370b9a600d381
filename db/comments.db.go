package db

import (
	"context"
	"database/sql"
	"errors"
)

const createCommentQuery = "INSERT INTO comments (content, post_id, author_id) VALUES ($1, $2, $3) RETURNING id, content, created_at, likes, author_id, post_id"

// CreateComment inserts a comment on a post and returns the stored row.
// A postID with no matching post trips the foreign key and comes back as
// a store error.
func (d *DB) CreateComment(ctx context.Context, content string, postID, authorID int64) (*Comment, error) {
	row := d.Db.QueryRowContext(ctx, createCommentQuery, content, postID, authorID)

	c := &Comment{}
	err := row.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.Likes, &c.AuthorID, &c.PostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsertFailed
		}
		return nil, err
	}
	return c, nil
}
