package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "created_at"}

func TestCreateUser(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectQuery(createUserQuery).
		WithArgs("ann", "longenough").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "ann", testTime))

	user, err := d.CreateUser(context.Background(), "ann", "longenough")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ann", user.Username)

	// The insert returns id, username, created_at only.
	assert.Empty(t, user.Password)
}

func TestCreateUser_NoRowStored(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectQuery(createUserQuery).
		WithArgs("ann", "longenough").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := d.CreateUser(context.Background(), "ann", "longenough")
	assert.ErrorIs(t, err, ErrInsertFailed)
}

func TestFetchUserByCredentials(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectQuery(userByCredentialsQuery).
		WithArgs("ann", "longenough").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "ann", testTime))

	user, err := d.FetchUserByCredentials(context.Background(), "ann", "longenough")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
}

func TestFetchUserByCredentials_NoMatch(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectQuery(userByCredentialsQuery).
		WithArgs("ann", "wrong").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := d.FetchUserByCredentials(context.Background(), "ann", "wrong")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFetchUserByCredentials_Ambiguous(t *testing.T) {
	d, mock := newMockDB(t)

	// Two rows carrying the same credentials: nobody gets logged in.
	mock.ExpectQuery(userByCredentialsQuery).
		WithArgs("ann", "longenough").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "ann", testTime).
			AddRow(2, "ann", testTime))

	user, err := d.FetchUserByCredentials(context.Background(), "ann", "longenough")
	require.NoError(t, err)
	assert.Nil(t, user)
}
