package router

import (
	"encoding/json"
	"net/http"

	"github.com/blog-app/blog-backend/db"
	"github.com/blog-app/blog-backend/log"
	"github.com/gorilla/mux"
)

// RouterContext carries what earlier pipeline steps resolved for the
// later ones: the store handle, the authenticated user, the parsed post
// id and the raw request body.
type RouterContext struct {
	pqdb   *db.DB
	user   *db.User
	postid int64
	body   []byte
}

type HTTPError struct {
	Level   int    `json:"-"`
	IError  error  `json:"-"`
	Status  int    `json:"-"`
	Message string `json:"error"`
}

type Handler func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError

// Handle runs the handlers in order, stopping at the first one that
// returns an error.
func Handle(pqdb *db.DB, handlers ...Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		rc := &RouterContext{
			pqdb: pqdb,
		}
		w.Header().Add("Content-Type", "application/json")

		for _, handler := range handlers {
			e := handler(rc, w, r)
			if e != nil {

				// 3 Levels of errors
				// Level 1: Don't log anything on server, Only return a response to the user
				// Level 2: Log the error as warning on the server, But don't send a response or close the request
				// Level 3: Log the error, Cancel the request from going any further and return a generic response
				switch e.Level {
				case 1:
					writeError(w, e)
					return

				case 2:
					log.Warn.Printf("%v: %s\n", e.IError, e.IError)

				case 3:
					log.Error.Printf("%v: %s\n", e.IError, e.IError)
					writeError(w, e)
					return
				}
			}
		}
	})
}

func writeError(w http.ResponseWriter, e *HTTPError) {
	w.WriteHeader(e.Status)
	err := json.NewEncoder(w).Encode(e)
	if err != nil {
		log.Error.Printf("%v: %s\n", err, err)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(http.StatusText(http.StatusInternalServerError)))
	}
}

func Init(pqdb *db.DB) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/blogs", Handle(pqdb,
		authorize(),
		requireBody(),
		SubmitPost(),
	)).Methods("POST")

	r.Handle("/blogs", Handle(pqdb,
		FetchAllPosts(),
	)).Methods("GET")

	// Fixed paths go in before /blogs/{id} so mux never reads "self" or
	// "search" as an id.
	r.Handle("/blogs/self", Handle(pqdb,
		authorize(),
		FetchOwnPosts(),
	)).Methods("GET")

	r.Handle("/blogs/search", Handle(pqdb,
		SearchPosts(),
	)).Methods("GET")

	r.Handle("/blogs/{id}", Handle(pqdb,
		parsePostID(),
		FetchPost(),
	)).Methods("GET")

	r.Handle("/blogs/{id}", Handle(pqdb,
		authorize(),
		parsePostID(),
		DeletePost(),
	)).Methods("DELETE")

	r.Handle("/blogs/{id}", Handle(pqdb,
		authorize(),
		parsePostID(),
		requireBody(),
		ReplacePost(),
	)).Methods("PUT")

	r.Handle("/blogs/{id}/title", Handle(pqdb,
		authorize(),
		parsePostID(),
		requireBody(),
		PatchPostTitle(),
	)).Methods("PATCH")

	r.Handle("/blogs/{id}/like", Handle(pqdb,
		parsePostID(),
		LikePost(),
	)).Methods("PATCH")

	r.Handle("/blogs/{id}/dislike", Handle(pqdb,
		parsePostID(),
		DislikePost(),
	)).Methods("PATCH")

	r.Handle("/comments", Handle(pqdb,
		authorize(),
		requireBody(),
		SubmitComment(),
	)).Methods("POST")

	r.Handle("/users", Handle(pqdb,
		requireBody(),
		RegisterUser(),
	)).Methods("POST")

	return r
}
