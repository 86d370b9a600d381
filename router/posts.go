package router

import (
	"encoding/json"
	"net/http"

	"github.com/blog-app/blog-backend/validation"
)

// SubmitPost creates a blog post owned by the authenticated user.
func SubmitPost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		var req SubmitPostRequest
		if err := json.Unmarshal(rc.body, &req); err != nil {
			return handleParsingError(err)
		}

		if !validation.IsValidString(req.Title) {
			return handleInvalidDataError("Title", "string")
		}
		if !validation.IsValidString(req.Content) {
			return handleInvalidDataError("Content", "string")
		}

		post, err := rc.pqdb.CreatePost(r.Context(), req.Title, req.Content, rc.user.ID)
		if err != nil {
			return handleInternalError(err)
		}

		return respondJSON(w, http.StatusCreated, post)
	}
}

// FetchAllPosts lists every post. No auth, no filters.
func FetchAllPosts() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		posts, err := rc.pqdb.FetchAllPosts(r.Context())
		if err != nil {
			return handleInternalError(err)
		}

		return respondJSON(w, http.StatusOK, posts)
	}
}

// FetchOwnPosts lists the posts owned by the authenticated user.
func FetchOwnPosts() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		posts, err := rc.pqdb.FetchPostsByAuthor(r.Context(), rc.user.ID)
		if err != nil {
			return handleInternalError(err)
		}

		return respondJSON(w, http.StatusOK, posts)
	}
}

// SearchPosts matches posts whose title contains the "title" query
// parameter. An empty result is still a 200 with [].
func SearchPosts() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		title := r.URL.Query().Get("title")
		if !validation.IsValidString(title) {
			return &HTTPError{
				Level:   1,
				Status:  http.StatusBadRequest,
				Message: ErrBadSearchTitle,
			}
		}

		posts, err := rc.pqdb.SearchPostsByTitle(r.Context(), title)
		if err != nil {
			return handleInternalError(err)
		}

		return respondJSON(w, http.StatusOK, posts)
	}
}

// FetchPost returns one post with its comments attached.
func FetchPost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		post, err := rc.pqdb.FetchPostByID(r.Context(), rc.postid)
		if err != nil {
			return handleInternalError(err)
		}
		if post == nil {
			return handleMissingPostError(rc.postid)
		}

		return respondJSON(w, http.StatusOK, post)
	}
}

// DeletePost removes a post. The repository only deletes rows the
// authenticated user owns, so a foreign post looks like a 404 here.
func DeletePost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		deleted, err := rc.pqdb.DeletePostByID(r.Context(), rc.postid, rc.user.ID)
		if err != nil {
			return handleInternalError(err)
		}
		if !deleted {
			return handleMissingPostError(rc.postid)
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// ReplacePost updates every writable field of an owned post.
func ReplacePost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		var req SubmitPostRequest
		if err := json.Unmarshal(rc.body, &req); err != nil {
			return handleParsingError(err)
		}

		if !validation.IsValidString(req.Title) {
			return handleInvalidDataError("Title", "string")
		}
		if !validation.IsValidString(req.Content) {
			return handleInvalidDataError("Content", "string")
		}

		updated, err := rc.pqdb.UpdatePostByID(r.Context(), rc.postid, rc.user.ID, req.Title, req.Content)
		if err != nil {
			return handleInternalError(err)
		}
		if !updated {
			return handleMissingPostError(rc.postid)
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// PatchPostTitle updates only the title of an owned post.
func PatchPostTitle() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		var req SubmitPostRequest
		if err := json.Unmarshal(rc.body, &req); err != nil {
			return handleParsingError(err)
		}

		if !validation.IsValidString(req.Title) {
			return handleInvalidDataError("Title", "string")
		}

		updated, err := rc.pqdb.UpdatePostTitleByID(r.Context(), rc.postid, rc.user.ID, req.Title)
		if err != nil {
			return handleInternalError(err)
		}
		if !updated {
			return handleMissingPostError(rc.postid)
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// LikePost bumps the likes counter. No auth and no body; anyone may
// like any post.
func LikePost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		updated, err := rc.pqdb.LikePostByID(r.Context(), rc.postid)
		if err != nil {
			return handleInternalError(err)
		}
		if !updated {
			return handleMissingPostError(rc.postid)
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

// DislikePost drops the likes counter.
func DislikePost() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		updated, err := rc.pqdb.DislikePostByID(r.Context(), rc.postid)
		if err != nil {
			return handleInternalError(err)
		}
		if !updated {
			return handleMissingPostError(rc.postid)
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}
