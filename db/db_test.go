package db

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// newMockDB wires a DB around a sqlmock connection that matches query
// text exactly.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { sqldb.Close() })

	return &DB{Db: sqldb}, mock
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
