package service

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/laundryhub/slotboard/internal/hub"
    "github.com/laundryhub/slotboard/internal/model"
    "github.com/laundryhub/slotboard/internal/repository"
)

// SlotStore is the storage contract the reservation service depends on.
// *repository.ReservationRepo is the production implementation; tests
// substitute an in-memory fake.  Insert must enforce the (date, timeSlot)
// uniqueness atomically and report a collision as repository.ErrSlotTaken.
type SlotStore interface {
    ListAll(ctx context.Context) ([]model.Reservation, error)
    Insert(ctx context.Context, res model.Reservation) error
    Remove(ctx context.Context, date, timeSlot string) (*model.Reservation, error)
}

// ReservationService orchestrates a store mutation plus its notification
// as one logical unit.  The publish step is best-effort: once the store
// accepted the mutation the caller gets a success no matter what happens
// to individual subscribers.
type ReservationService struct {
    store SlotStore
    hub   *hub.Hub
}

// NewReservationService returns a service over the given store and hub.
func NewReservationService(store SlotStore, h *hub.Hub) *ReservationService {
    if store == nil || h == nil {
        panic("nil dependency passed to NewReservationService")
    }
    return &ReservationService{store: store, hub: h}
}

// ListAll is a pure passthrough read of the current reservation set.
func (s *ReservationService) ListAll(ctx context.Context) ([]model.Reservation, error) {
    return s.store.ListAll(ctx)
}

// Create validates the draft, assigns the id and creation timestamp and
// attempts the atomic insert.  Exactly one of any set of concurrent
// creates for the same slot succeeds; the rest observe ErrAlreadyBooked.
// On success an "add" event is fanned out to all subscribers.
func (s *ReservationService) Create(ctx context.Context, draft model.ReservationDraft) (*model.Reservation, error) {
    if err := validateDraft(draft); err != nil {
        return nil, err
    }
    now := time.Now().UTC()
    res := model.Reservation{
        // id derives from the slot key plus the creation instant; nanosecond
        // precision keeps cancel-then-recreate ids distinct
        ID:        fmt.Sprintf("%s-%s-%d", draft.Date, draft.TimeSlot, now.UnixNano()),
        Date:      draft.Date,
        TimeSlot:  draft.TimeSlot,
        UserID:    draft.UserID,
        UserColor: draft.UserColor,
        CreatedAt: now.Format(time.RFC3339),
    }
    if err := s.store.Insert(ctx, res); err != nil {
        if errors.Is(err, repository.ErrSlotTaken) {
            return nil, ErrAlreadyBooked
        }
        return nil, err
    }
    if b := encodeEvent(ChangeEvent{Type: EventAdd, Reservation: &res}); b != nil {
        s.hub.Publish(b)
    }
    return &res, nil
}

// Cancel removes the reservation occupying the slot and fans out a
// "delete" event carrying the removed row.  ErrNotFound is an expected
// outcome when the slot is already free.
func (s *ReservationService) Cancel(ctx context.Context, date, timeSlot string) (*model.Reservation, error) {
    if date == "" || timeSlot == "" {
        return nil, fmt.Errorf("%w: date and timeSlot are required", ErrValidation)
    }
    removed, err := s.store.Remove(ctx, date, timeSlot)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    if b := encodeEvent(ChangeEvent{Type: EventDelete, Reservation: removed}); b != nil {
        s.hub.Publish(b)
    }
    return removed, nil
}

// validateDraft rejects malformed booking requests before any storage
// access.  The date must be a real ISO 8601 calendar date and the slot
// one of the seven fixed bands.
func validateDraft(d model.ReservationDraft) error {
    if d.Date == "" || d.TimeSlot == "" || d.UserID == "" {
        return fmt.Errorf("%w: date, timeSlot and userId are required", ErrValidation)
    }
    if _, err := time.Parse("2006-01-02", d.Date); err != nil {
        return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
    }
    if !model.ValidTimeSlot(d.TimeSlot) {
        return fmt.Errorf("%w: unknown time slot %q", ErrValidation, d.TimeSlot)
    }
    return nil
}
