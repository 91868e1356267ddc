package queue

import (
    "testing"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/laundryhub/slotboard/internal/repository"
)

func TestHandleMessageInsertsRow(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()
    repo := repository.NewAccessLogRepo(db)

    mock.ExpectExec("INSERT INTO access_logs").
        WillReturnResult(sqlmock.NewResult(1, 1))

    body := []byte(`{"user_id":"u1","user_name":"Anna","action":"reservation_create","detail":"2024-06-10 10-12","accessed_at":"2024-06-10T09:30:00Z"}`)
    require.NoError(t, handleMessage(body, repo))
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMessageStampsMissingTimestamp(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()
    repo := repository.NewAccessLogRepo(db)

    mock.ExpectExec("INSERT INTO access_logs").
        WillReturnResult(sqlmock.NewResult(1, 1))

    require.NoError(t, handleMessage([]byte(`{"action":"page_view"}`), repo))
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleMessageRejectsBadPayload(t *testing.T) {
    db, _, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()
    repo := repository.NewAccessLogRepo(db)

    assert.Error(t, handleMessage([]byte("not json"), repo))
}
