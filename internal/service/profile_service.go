package service

import (
    "context"
    "fmt"
    "time"

    "github.com/laundryhub/slotboard/internal/hub"
    "github.com/laundryhub/slotboard/internal/model"
)

// ProfileStore is the storage contract for user profiles.
type ProfileStore interface {
    GetAll(ctx context.Context) ([]model.Profile, error)
    Upsert(ctx context.Context, p model.Profile) error
}

// ProfileService saves profiles and fans out profile_update events on the
// profile stream so every open tab recolors immediately.
type ProfileService struct {
    store ProfileStore
    hub   *hub.Hub
}

// NewProfileService returns a service over the given store and hub.
func NewProfileService(store ProfileStore, h *hub.Hub) *ProfileService {
    if store == nil || h == nil {
        panic("nil dependency passed to NewProfileService")
    }
    return &ProfileService{store: store, hub: h}
}

// GetAll returns every profile keyed by user id, the shape clients expect
// for their local lookup table.
func (s *ProfileService) GetAll(ctx context.Context) (map[string]model.Profile, error) {
    list, err := s.store.GetAll(ctx)
    if err != nil {
        return nil, err
    }
    out := make(map[string]model.Profile, len(list))
    for _, p := range list {
        out[p.ID] = p
    }
    return out, nil
}

// Save upserts the profile, stamping updatedAt, then publishes the
// refreshed profile to subscribers.
func (s *ProfileService) Save(ctx context.Context, p model.Profile) (*model.Profile, error) {
    if p.ID == "" || p.Name == "" || p.Color == "" {
        return nil, fmt.Errorf("%w: id, name and color are required", ErrValidation)
    }
    p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
    if err := s.store.Upsert(ctx, p); err != nil {
        return nil, err
    }
    if b := encodeEvent(ChangeEvent{Type: EventProfileUpdate, Profile: &p}); b != nil {
        s.hub.Publish(b)
    }
    return &p, nil
}
