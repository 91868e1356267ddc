package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/laundryhub/slotboard/internal/model"
)

// ProfileRepo provides storage access for user profiles.  Profiles are
// written with an upsert because the client owns the identifier and may
// re-save the same profile any number of times.
type ProfileRepo struct {
    db *sql.DB
}

// NewProfileRepo returns a new ProfileRepo bound to the given database.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// GetAll returns every stored profile.
func (r *ProfileRepo) GetAll(ctx context.Context) ([]model.Profile, error) {
    const q = `SELECT id, name, color, updated_at FROM profiles`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Profile, 0)
    for rows.Next() {
        var p model.Profile
        var updatedAt time.Time
        if err := rows.Scan(&p.ID, &p.Name, &p.Color, &updatedAt); err != nil {
            return nil, err
        }
        p.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
        out = append(out, p)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Get returns a single profile by user id, or ErrNotFound.
func (r *ProfileRepo) Get(ctx context.Context, id string) (*model.Profile, error) {
    const q = `SELECT id, name, color, updated_at FROM profiles WHERE id = ?`
    var p model.Profile
    var updatedAt time.Time
    err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Color, &updatedAt)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    p.UpdatedAt = updatedAt.UTC().Format(time.RFC3339)
    return &p, nil
}

// Upsert inserts the profile or, when the id already exists, replaces its
// name, color and updated_at in place.
func (r *ProfileRepo) Upsert(ctx context.Context, p model.Profile) error {
    updatedAt, err := time.Parse(time.RFC3339, p.UpdatedAt)
    if err != nil {
        return err
    }
    const q = `INSERT INTO profiles (id, name, color, updated_at)
               VALUES (?, ?, ?, ?)
               ON DUPLICATE KEY UPDATE name = VALUES(name), color = VALUES(color), updated_at = VALUES(updated_at)`
    _, err = r.db.ExecContext(ctx, q, p.ID, p.Name, p.Color, updatedAt.UTC())
    return err
}
