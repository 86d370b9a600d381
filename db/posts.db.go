package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

const (
	createPostQuery = "INSERT INTO posts (title, content, author_id) VALUES ($1, $2, $3) RETURNING id, title, content, created_at, likes, author_id"

	postListQuery = "SELECT posts.id, posts.title, posts.content, posts.created_at, posts.likes, users.username, users.id AS author_id FROM posts LEFT JOIN users ON posts.author_id = users.id"

	postsByAuthorQuery = postListQuery + " WHERE author_id = $1"

	postByIDQuery = "SELECT id, title, content, created_at, likes, author_id FROM posts WHERE id = $1"

	postCommentsQuery = "SELECT comments.id, comments.content, comments.created_at, comments.likes, users.username, users.id AS author_id FROM comments LEFT JOIN users ON comments.author_id = users.id WHERE post_id = $1"

	searchPostsQuery = "SELECT id, title, content, created_at, likes, author_id FROM posts WHERE LOWER(title) LIKE $1"

	deletePostQuery = "DELETE FROM posts WHERE id = $1 AND author_id = $2"

	updatePostQuery = "UPDATE posts SET title = $1, content = $2 WHERE id = $3 AND author_id = $4"

	updatePostTitleQuery = "UPDATE posts SET title = $1 WHERE id = $2 AND author_id = $3"

	likePostQuery = "UPDATE posts SET likes = likes + 1 WHERE id = $1"

	dislikePostQuery = "UPDATE posts SET likes = likes - 1 WHERE id = $1"
)

// CreatePost inserts a post and returns the stored row, including the
// generated id and timestamp.
func (d *DB) CreatePost(ctx context.Context, title, content string, authorID int64) (*Post, error) {
	row := d.Db.QueryRowContext(ctx, createPostQuery, title, content, authorID)

	p := &Post{}
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.Likes, &p.AuthorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsertFailed
		}
		return nil, err
	}
	return p, nil
}

// FetchAllPosts lists every post with its author username joined in.
// Row order is whatever Postgres returns.
func (d *DB) FetchAllPosts(ctx context.Context) ([]*PostWithAuthor, error) {
	rows, err := d.Db.QueryContext(ctx, postListQuery)
	if err != nil {
		return nil, err
	}
	return scanPostList(rows)
}

// FetchPostsByAuthor lists the posts owned by authorID, same shape as
// FetchAllPosts.
func (d *DB) FetchPostsByAuthor(ctx context.Context, authorID int64) ([]*PostWithAuthor, error) {
	rows, err := d.Db.QueryContext(ctx, postsByAuthorQuery, authorID)
	if err != nil {
		return nil, err
	}
	return scanPostList(rows)
}

// FetchPostByID returns the post with its comments attached, or nil when
// no post matches. An absent post is not an error; handlers turn the nil
// into a 404.
func (d *DB) FetchPostByID(ctx context.Context, postID int64) (*PostWithComments, error) {
	row := d.Db.QueryRowContext(ctx, postByIDQuery, postID)

	p := &PostWithComments{Comments: []*CommentWithAuthor{}}
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.Likes, &p.AuthorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := d.Db.QueryContext(ctx, postCommentsQuery, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c := &CommentWithAuthor{}
		err := rows.Scan(&c.ID, &c.Content, &c.CreatedAt, &c.Likes, &c.Username, &c.AuthorID)
		if err != nil {
			return nil, err
		}
		p.Comments = append(p.Comments, c)
	}
	return p, rows.Err()
}

// SearchPostsByTitle matches title substrings case-insensitively, so
// "script" finds "JavaScript Basics". No match is an empty list.
func (d *DB) SearchPostsByTitle(ctx context.Context, title string) ([]*Post, error) {
	rows, err := d.Db.QueryContext(ctx, searchPostsQuery, "%"+strings.ToLower(title)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		p := &Post{}
		err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.Likes, &p.AuthorID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// DeletePostByID removes a post only when authorID owns it. Ownership
// sits inside the predicate so the check and the delete cannot race.
func (d *DB) DeletePostByID(ctx context.Context, postID, authorID int64) (bool, error) {
	return rowsChanged(d.Db.ExecContext(ctx, deletePostQuery, postID, authorID))
}

// UpdatePostByID replaces title and content on a post owned by authorID.
func (d *DB) UpdatePostByID(ctx context.Context, postID, authorID int64, title, content string) (bool, error) {
	return rowsChanged(d.Db.ExecContext(ctx, updatePostQuery, title, content, postID, authorID))
}

// UpdatePostTitleByID updates only the title column; everything else on
// the row is untouched.
func (d *DB) UpdatePostTitleByID(ctx context.Context, postID, authorID int64, title string) (bool, error) {
	return rowsChanged(d.Db.ExecContext(ctx, updatePostTitleQuery, title, postID, authorID))
}

// LikePostByID bumps the likes counter by one. The arithmetic happens in
// the database, never on a value read earlier, so concurrent likes are
// never lost to a stale read.
func (d *DB) LikePostByID(ctx context.Context, postID int64) (bool, error) {
	return rowsChanged(d.Db.ExecContext(ctx, likePostQuery, postID))
}

// DislikePostByID drops the likes counter by one. The counter may go
// negative.
func (d *DB) DislikePostByID(ctx context.Context, postID int64) (bool, error) {
	return rowsChanged(d.Db.ExecContext(ctx, dislikePostQuery, postID))
}

func scanPostList(rows *sql.Rows) ([]*PostWithAuthor, error) {
	defer rows.Close()

	posts := []*PostWithAuthor{}
	for rows.Next() {
		p := &PostWithAuthor{}
		err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.Likes, &p.Username, &p.AuthorID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// rowsChanged reports whether an update or delete touched at least one
// row.
func rowsChanged(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
