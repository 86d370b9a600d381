package db

import "errors"

// ErrInsertFailed is returned when an insert reports anything other than
// exactly one stored row.
var ErrInsertFailed = errors.New("insert affected an unexpected number of rows")
