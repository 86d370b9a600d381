package router

import (
	"encoding/json"
	"net/http"

	"github.com/blog-app/blog-backend/validation"
)

// SubmitComment creates a comment on a post, authored by the
// authenticated user.
func SubmitComment() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		var req SubmitCommentRequest
		if err := json.Unmarshal(rc.body, &req); err != nil {
			return handleParsingError(err)
		}

		if !validation.IsValidString(req.Content) {
			return handleInvalidDataError("Content", "string")
		}
		postID, ok := validation.ParseNumber(req.PostID.String())
		if !ok {
			return handleInvalidDataError("PostId", "number")
		}

		// A postID pointing at no post fails the foreign key in the
		// store and surfaces as a 500, same as any other insert failure.
		comment, err := rc.pqdb.CreateComment(r.Context(), req.Content, postID, rc.user.ID)
		if err != nil {
			return handleInternalError(err)
		}

		return respondJSON(w, http.StatusCreated, comment)
	}
}
