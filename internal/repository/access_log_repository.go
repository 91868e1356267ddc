package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/laundryhub/slotboard/internal/model"
)

// AccessLogRepo provides storage access for the audit trail of user
// actions.  Rows are append-only; the listing queries build their WHERE
// clause dynamically from the supplied filter.
type AccessLogRepo struct {
    db *sql.DB
}

// NewAccessLogRepo returns a new AccessLogRepo bound to the given database.
func NewAccessLogRepo(db *sql.DB) *AccessLogRepo { return &AccessLogRepo{db: db} }

// AccessLogFilter narrows List and Count results.  Zero values mean
// "no constraint".  Start and End bound accessed_at inclusively.
type AccessLogFilter struct {
    UserID string
    Action string
    Start  *time.Time
    End    *time.Time
    Limit  int
    Offset int
}

// AccessSummary aggregates today's activity for the dashboard view.
type AccessSummary struct {
    TotalToday       int64            `json:"totalToday"`
    UniqueUsersToday int64            `json:"uniqueUsersToday"`
    ActionCounts     map[string]int64 `json:"actionCounts"`
}

// Insert appends one audit entry and returns its generated id.
func (r *AccessLogRepo) Insert(ctx context.Context, entry model.AccessLog) (int64, error) {
    accessedAt, err := time.Parse(time.RFC3339, entry.AccessedAt)
    if err != nil {
        return 0, err
    }
    const q = `INSERT INTO access_logs (user_id, user_name, action, detail, ip_address, user_agent, accessed_at)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
    result, err := r.db.ExecContext(ctx, q,
        entry.UserID, entry.UserName, entry.Action, entry.Detail,
        entry.IPAddress, entry.UserAgent, accessedAt.UTC())
    if err != nil {
        return 0, err
    }
    return result.LastInsertId()
}

// List returns audit entries matching the filter, newest first.
func (r *AccessLogRepo) List(ctx context.Context, f AccessLogFilter) ([]model.AccessLog, error) {
    query := `SELECT id, user_id, user_name, action, detail, ip_address, user_agent, accessed_at
              FROM access_logs WHERE 1=1`
    query, args := appendFilter(query, nil, f)
    query += ` ORDER BY accessed_at DESC LIMIT ? OFFSET ?`
    limit := f.Limit
    if limit <= 0 {
        limit = 100
    }
    args = append(args, limit, f.Offset)

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.AccessLog, 0)
    for rows.Next() {
        var e model.AccessLog
        var userID, userName, detail, ip, ua sql.NullString
        var accessedAt time.Time
        if err := rows.Scan(&e.ID, &userID, &userName, &e.Action, &detail, &ip, &ua, &accessedAt); err != nil {
            return nil, err
        }
        e.UserID = nullable(userID)
        e.UserName = nullable(userName)
        e.Detail = nullable(detail)
        e.IPAddress = nullable(ip)
        e.UserAgent = nullable(ua)
        e.AccessedAt = accessedAt.UTC().Format(time.RFC3339)
        out = append(out, e)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Count returns the number of entries matching the filter, ignoring
// limit and offset.
func (r *AccessLogRepo) Count(ctx context.Context, f AccessLogFilter) (int64, error) {
    query := `SELECT COUNT(*) FROM access_logs WHERE 1=1`
    query, args := appendFilter(query, nil, f)
    var n int64
    if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
        return 0, err
    }
    return n, nil
}

// Summary aggregates activity since midnight UTC: total entries, unique
// users and a per-action breakdown.
func (r *AccessLogRepo) Summary(ctx context.Context) (AccessSummary, error) {
    sum := AccessSummary{ActionCounts: make(map[string]int64)}
    midnight := time.Now().UTC().Truncate(24 * time.Hour)

    const totalQ = `SELECT COUNT(*) FROM access_logs WHERE accessed_at >= ?`
    if err := r.db.QueryRowContext(ctx, totalQ, midnight).Scan(&sum.TotalToday); err != nil {
        return AccessSummary{}, err
    }
    const usersQ = `SELECT COUNT(DISTINCT user_id) FROM access_logs WHERE accessed_at >= ? AND user_id IS NOT NULL`
    if err := r.db.QueryRowContext(ctx, usersQ, midnight).Scan(&sum.UniqueUsersToday); err != nil {
        return AccessSummary{}, err
    }

    const actionsQ = `SELECT action, COUNT(*) FROM access_logs WHERE accessed_at >= ? GROUP BY action`
    rows, err := r.db.QueryContext(ctx, actionsQ, midnight)
    if err != nil {
        return AccessSummary{}, err
    }
    defer rows.Close()
    for rows.Next() {
        var action string
        var n int64
        if err := rows.Scan(&action, &n); err != nil {
            return AccessSummary{}, err
        }
        sum.ActionCounts[action] = n
    }
    if err := rows.Err(); err != nil {
        return AccessSummary{}, err
    }
    return sum, nil
}

func appendFilter(query string, args []any, f AccessLogFilter) (string, []any) {
    if f.UserID != "" {
        query += ` AND user_id = ?`
        args = append(args, f.UserID)
    }
    if f.Action != "" {
        query += ` AND action = ?`
        args = append(args, f.Action)
    }
    if f.Start != nil {
        query += ` AND accessed_at >= ?`
        args = append(args, f.Start.UTC())
    }
    if f.End != nil {
        query += ` AND accessed_at <= ?`
        args = append(args, f.End.UTC())
    }
    return query, args
}

func nullable(s sql.NullString) *string {
    if !s.Valid {
        return nil
    }
    v := s.String
    return &v
}
