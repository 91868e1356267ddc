package repository

import (
    "context"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestAccessLogListAppliesFilters(t *testing.T) {
    db, mock := newMock(t)
    repo := NewAccessLogRepo(db)

    accessedAt := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
    start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
    rows := sqlmock.NewRows([]string{"id", "user_id", "user_name", "action", "detail", "ip_address", "user_agent", "accessed_at"}).
        AddRow(1, "u1", "Anna", "reservation_create", "2024-06-10 10-12", "10.0.0.1", "curl", accessedAt)
    mock.ExpectQuery("SELECT (.+) FROM access_logs WHERE 1=1 AND user_id = \\? AND action = \\? AND accessed_at >= \\? ORDER BY accessed_at DESC LIMIT \\? OFFSET \\?").
        WithArgs("u1", "reservation_create", start, 50, 0).
        WillReturnRows(rows)

    logs, err := repo.List(context.Background(), AccessLogFilter{
        UserID: "u1",
        Action: "reservation_create",
        Start:  &start,
        Limit:  50,
    })
    require.NoError(t, err)
    require.Len(t, logs, 1)
    require.NotNil(t, logs[0].UserID)
    assert.Equal(t, "u1", *logs[0].UserID)
    assert.Equal(t, "2024-06-10T12:00:00Z", logs[0].AccessedAt)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogCount(t *testing.T) {
    db, mock := newMock(t)
    repo := NewAccessLogRepo(db)

    mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM access_logs WHERE 1=1 AND action = \\?").
        WithArgs("sse_connect").
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

    n, err := repo.Count(context.Background(), AccessLogFilter{Action: "sse_connect"})
    require.NoError(t, err)
    assert.Equal(t, int64(7), n)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessLogSummary(t *testing.T) {
    db, mock := newMock(t)
    repo := NewAccessLogRepo(db)

    mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM access_logs WHERE accessed_at >= \\?").
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
    mock.ExpectQuery("SELECT COUNT\\(DISTINCT user_id\\) FROM access_logs").
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
    mock.ExpectQuery("SELECT action, COUNT\\(\\*\\) FROM access_logs").
        WillReturnRows(sqlmock.NewRows([]string{"action", "count"}).
            AddRow("page_view", 8).
            AddRow("reservation_create", 4))

    sum, err := repo.Summary(context.Background())
    require.NoError(t, err)
    assert.Equal(t, int64(12), sum.TotalToday)
    assert.Equal(t, int64(3), sum.UniqueUsersToday)
    assert.Equal(t, int64(8), sum.ActionCounts["page_view"])
    assert.NoError(t, mock.ExpectationsWereMet())
}
