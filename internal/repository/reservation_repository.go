package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/go-sql-driver/mysql"

    "github.com/laundryhub/slotboard/internal/model"
)

// mysqlDupEntry is the MySQL error number raised when an insert violates
// a unique index (ER_DUP_ENTRY).
const mysqlDupEntry = 1062

// ReservationRepo provides storage access for washing-machine slot
// reservations.  The uniqueness of the (date, time_slot) pair is enforced
// by a unique index on the reservations table, so a single INSERT is the
// atomic arbiter between concurrent bookings; there is no application
// level check-then-insert step.  All timestamps are stored in UTC.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ListAll returns every stored reservation, past ones included.  No
// ordering is guaranteed to callers; the read side re-sorts as needed.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
    const q = `SELECT id, date, time_slot, user_id, user_color, created_at FROM reservations`
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        res, err := scanReservation(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Insert stores a fully assembled reservation.  When the (date, time_slot)
// pair is already booked the unique index rejects the row and ErrSlotTaken
// is returned; any other error is a storage fault and propagates as-is.
func (r *ReservationRepo) Insert(ctx context.Context, res model.Reservation) error {
    createdAt, err := time.Parse(time.RFC3339, res.CreatedAt)
    if err != nil {
        return err
    }
    const q = `INSERT INTO reservations (id, date, time_slot, user_id, user_color, created_at)
               VALUES (?, ?, ?, ?, ?, ?)`
    _, err = r.db.ExecContext(ctx, q, res.ID, res.Date, res.TimeSlot, res.UserID, res.UserColor, createdAt.UTC())
    if err != nil {
        var me *mysql.MySQLError
        if errors.As(err, &me) && me.Number == mysqlDupEntry {
            return ErrSlotTaken
        }
        return err
    }
    return nil
}

// Remove deletes the reservation occupying the given slot and returns the
// removed row so the caller can publish it to subscribers.  The select and
// delete run inside one transaction so two racing cancels cannot both
// observe the row.  ErrNotFound is returned when the slot is free.
func (r *ReservationRepo) Remove(ctx context.Context, date, timeSlot string) (*model.Reservation, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const sel = `SELECT id, date, time_slot, user_id, user_color, created_at
                 FROM reservations WHERE date = ? AND time_slot = ? FOR UPDATE`
    row := tx.QueryRowContext(ctx, sel, date, timeSlot)
    res, err := scanReservation(row)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }

    const del = `DELETE FROM reservations WHERE date = ? AND time_slot = ?`
    if _, err := tx.ExecContext(ctx, del, date, timeSlot); err != nil {
        return nil, err
    }
    if err := tx.Commit(); err != nil {
        return nil, err
    }
    committed = true
    return &res, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanReservation.
type scanner interface {
    Scan(dest ...any) error
}

func scanReservation(s scanner) (model.Reservation, error) {
    var res model.Reservation
    var userColor sql.NullString
    var createdAt time.Time
    if err := s.Scan(&res.ID, &res.Date, &res.TimeSlot, &res.UserID, &userColor, &createdAt); err != nil {
        return model.Reservation{}, err
    }
    if userColor.Valid {
        c := userColor.String
        res.UserColor = &c
    }
    res.CreatedAt = createdAt.UTC().Format(time.RFC3339)
    return res, nil
}
