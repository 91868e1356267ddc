package repository

import (
    "context"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/laundryhub/slotboard/internal/model"
)

func TestProfileUpsert(t *testing.T) {
    db, mock := newMock(t)
    repo := NewProfileRepo(db)

    mock.ExpectExec("INSERT INTO profiles").
        WithArgs("u1", "Anna", "#ff0000", sqlmock.AnyArg()).
        WillReturnResult(sqlmock.NewResult(0, 1))

    err := repo.Upsert(context.Background(), model.Profile{
        ID: "u1", Name: "Anna", Color: "#ff0000", UpdatedAt: "2024-06-10T09:30:00Z",
    })
    assert.NoError(t, err)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileGetMissing(t *testing.T) {
    db, mock := newMock(t)
    repo := NewProfileRepo(db)

    mock.ExpectQuery("SELECT id, name, color, updated_at FROM profiles WHERE id = \\?").
        WithArgs("nobody").
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "updated_at"}))

    _, err := repo.Get(context.Background(), "nobody")
    assert.ErrorIs(t, err, ErrNotFound)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileGetAll(t *testing.T) {
    db, mock := newMock(t)
    repo := NewProfileRepo(db)

    updatedAt := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
    mock.ExpectQuery("SELECT id, name, color, updated_at FROM profiles").
        WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "updated_at"}).
            AddRow("u1", "Anna", "#ff0000", updatedAt).
            AddRow("u2", "Ben", "#0000ff", updatedAt))

    out, err := repo.GetAll(context.Background())
    require.NoError(t, err)
    require.Len(t, out, 2)
    assert.Equal(t, "2024-06-10T09:30:00Z", out[0].UpdatedAt)
    assert.NoError(t, mock.ExpectationsWereMet())
}
