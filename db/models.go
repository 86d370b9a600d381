package db

import "time"

// Field names on the wire are the column names, the same shape the rows
// come back from Postgres in.

type User struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Post struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   *string   `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Likes     int       `db:"likes" json:"likes"`
	AuthorID  *int64    `db:"author_id" json:"author_id"`
}

// PostWithAuthor is a list row with the author username joined in.
type PostWithAuthor struct {
	Post
	Username *string `db:"username" json:"username"`
}

// PostWithComments is the detail view: the bare post row plus every
// comment on it.
type PostWithComments struct {
	Post
	Comments []*CommentWithAuthor `json:"comments"`
}

type Comment struct {
	ID        int64     `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Likes     int       `db:"likes" json:"likes"`
	AuthorID  *int64    `db:"author_id" json:"author_id"`
	PostID    int64     `db:"post_id" json:"post_id"`
}

type CommentWithAuthor struct {
	ID        int64     `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Likes     int       `db:"likes" json:"likes"`
	Username  *string   `db:"username" json:"username"`
	AuthorID  *int64    `db:"author_id" json:"author_id"`
}
