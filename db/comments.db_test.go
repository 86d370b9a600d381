package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	d, mock := newMockDB(t)

	mock.ExpectQuery(createCommentQuery).
		WithArgs("First!", int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "created_at", "likes", "author_id", "post_id"}).
			AddRow(11, "First!", testTime, 0, 2, 5))

	comment, err := d.CreateComment(context.Background(), "First!", 5, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(11), comment.ID)
	assert.Equal(t, "First!", comment.Content)
	assert.Equal(t, int64(5), comment.PostID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComment_MissingPost(t *testing.T) {
	d, mock := newMockDB(t)

	// The post_id foreign key rejects the row; the error comes straight
	// back to the caller.
	fkErr := errors.New(`pq: insert or update on table "comments" violates foreign key constraint`)
	mock.ExpectQuery(createCommentQuery).
		WithArgs("First!", int64(999999), int64(2)).
		WillReturnError(fkErr)

	_, err := d.CreateComment(context.Background(), "First!", 999999, 2)
	assert.ErrorIs(t, err, fkErr)
}
