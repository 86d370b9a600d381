package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/blog-app/blog-backend/validation"
	"github.com/gorilla/mux"
)

// authorize resolves the username/password request headers against the
// users table and stashes the matched user on the context. No match
// stops the request with a 401 before any resource is touched.
func authorize() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		user, err := rc.pqdb.FetchUserByCredentials(r.Context(),
			r.Header.Get("username"), r.Header.Get("password"))
		if err != nil {
			return handleInternalError(err)
		}
		if user == nil {
			return &HTTPError{
				IError:  errors.New("credential mismatch"),
				Level:   1,
				Status:  http.StatusUnauthorized,
				Message: ErrBadCredentials,
			}
		}

		rc.user = user
		return nil
	}
}

// requireBody reads the request body and rejects requests without one.
func requireBody() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		b, err := io.ReadAll(r.Body)
		if err != nil {
			return handleInternalError(err)
		}
		if len(b) == 0 {
			return &HTTPError{
				Level:   1,
				Status:  http.StatusBadRequest,
				Message: ErrMissingBody,
			}
		}

		rc.body = b
		return nil
	}
}

// parsePostID parses the {id} path segment. A non-numeric id stops here
// with a 400 and never reaches the store.
func parsePostID() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		id, ok := validation.ParseNumber(mux.Vars(r)["id"])
		if !ok {
			return &HTTPError{
				Level:   1,
				Status:  http.StatusBadRequest,
				Message: ErrBadPostID,
			}
		}

		rc.postid = id
		return nil
	}
}

// respondJSON writes v with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) *HTTPError {
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		return handleJSONError(err)
	}
	return nil
}

func handleJSONError(err error) *HTTPError {
	return &HTTPError{
		IError:  err,
		Level:   3,
		Status:  http.StatusInternalServerError,
		Message: ErrInternal,
	}
}

func handleParsingError(err error) *HTTPError {
	return &HTTPError{
		IError:  err,
		Level:   1,
		Status:  http.StatusBadRequest,
		Message: ErrParsing,
	}
}

func handleInternalError(err error) *HTTPError {
	return &HTTPError{
		IError:  err,
		Level:   3,
		Status:  http.StatusInternalServerError,
		Message: ErrInternal,
	}
}

// handleInvalidDataError names the field that failed validation, e.g.
// "Title must be included and be a string".
func handleInvalidDataError(field, kind string) *HTTPError {
	return &HTTPError{
		Level:   1,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("%s must be included and be a %s", field, kind),
	}
}

// handleMissingPostError is the 404 for a post id with no matching (or
// no owned) row.
func handleMissingPostError(postID int64) *HTTPError {
	return &HTTPError{
		Level:   1,
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("A post with id '%d' does not exist", postID),
	}
}
