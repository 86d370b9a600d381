package router

import "encoding/json"

type SubmitPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SubmitCommentRequest struct {
	Content string `json:"content"`
	// json.Number so a non-numeric value is reported against this field
	// instead of failing the whole decode.
	PostID json.Number `json:"postId"`
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
