package storage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestNewPostgresStorage_RejectsBadTableName(t *testing.T) {
	db, _ := setupMockDB(t)
	_, err := NewPostgresStorage(db, "drafts; DROP TABLE users")
	assert.Error(t, err)
}

func TestPostgresStorage_EnsureSchema(t *testing.T) {
	db, mock := setupMockDB(t)
	s, err := NewPostgresStorage(db, "local_storage")
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS local_storage").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_GetItem(t *testing.T) {
	db, mock := setupMockDB(t)
	s, _ := NewPostgresStorage(db, "local_storage")
	query := regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = $1")

	mock.ExpectQuery(query).WithArgs("college_application_drafts").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"draft_1":{}}`))
	v, found, err := s.GetItem(context.Background(), "college_application_drafts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"draft_1":{}}`, v)

	mock.ExpectQuery(query).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	_, found, err = s.GetItem(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)

	mock.ExpectQuery(query).WithArgs("broken").WillReturnError(errors.New("connection reset"))
	_, _, err = s.GetItem(context.Background(), "broken")
	assert.ErrorContains(t, err, "connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_SetAndRemove(t *testing.T) {
	db, mock := setupMockDB(t)
	s, _ := NewPostgresStorage(db, "local_storage")

	mock.ExpectExec("INSERT INTO local_storage").
		WithArgs("k", "v").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_storage WHERE key = $1")).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SetItem(context.Background(), "k", "v"))
	require.NoError(t, s.RemoveItem(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStorage_Keys(t *testing.T) {
	db, mock := setupMockDB(t)
	s, _ := NewPostgresStorage(db, "local_storage")

	mock.ExpectQuery("SELECT key FROM local_storage WHERE key LIKE").
		WithArgs(`video\_notes\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"key"}).
			AddRow("video_notes_video1").
			AddRow("video_notes_video2"))

	keys, err := s.Keys(context.Background(), "video_notes_")
	require.NoError(t, err)
	assert.Equal(t, []string{"video_notes_video1", "video_notes_video2"}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}
