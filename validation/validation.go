// Package validation holds the primitive field checks handlers run
// before anything reaches the database. Pure functions, no I/O.
package validation

import "strconv"

// IsValidString reports whether v is usable as a required text field.
func IsValidString(v string) bool {
	return v != ""
}

// ParseNumber parses v as a base-10 integer. Malformed input fails here
// instead of surfacing later as a store error.
func ParseNumber(v string) (int64, bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
