package router

// Fixed messages the API emits. Error bodies on the wire are always
// {"error": <message>}.
var (

	// ErrBadCredentials is sent when the username/password headers match no user
	ErrBadCredentials = "The username or password is incorrect"
	// ErrMissingBody is sent when an endpoint needs a body and the request has none
	ErrMissingBody = "A JSON body must be included"
	// ErrParsing is sent when the body is present but is not valid JSON
	ErrParsing = "The request body must be valid JSON"
	// ErrBadPostID is sent when the id path segment is not numeric
	ErrBadPostID = "Post id must be a number"
	// ErrBadSearchTitle is sent when the search query parameter is missing
	ErrBadSearchTitle = "Title must be a string"
	// ErrShortPassword is sent on registration when the password is 6 characters or fewer
	ErrShortPassword = "Password must be at least 7 characters"
	// ErrInternal is sent for any failure the caller cannot do anything about
	ErrInternal = "An unexpected error occurred."
)
