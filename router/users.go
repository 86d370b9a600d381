package router

import (
	"encoding/json"
	"net/http"

	"github.com/blog-app/blog-backend/validation"
)

// RegisterUser creates a user. The response carries id, username and
// created_at; the password never leaves the database.
func RegisterUser() Handler {
	return func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError {

		var req RegisterUserRequest
		if err := json.Unmarshal(rc.body, &req); err != nil {
			return handleParsingError(err)
		}

		if !validation.IsValidString(req.Username) {
			return handleInvalidDataError("Username", "string")
		}
		if !validation.IsValidString(req.Password) {
			return handleInvalidDataError("Password", "string")
		}
		if len(req.Password) <= 6 {
			return &HTTPError{
				Level:   1,
				Status:  http.StatusBadRequest,
				Message: ErrShortPassword,
			}
		}

		user, err := rc.pqdb.CreateUser(r.Context(), req.Username, req.Password)
		if err != nil {
			return handleInternalError(err)
		}

		return respondJSON(w, http.StatusCreated, user)
	}
}
