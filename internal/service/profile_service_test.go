package service

import (
    "context"
    "encoding/json"
    "sync"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/laundryhub/slotboard/internal/hub"
    "github.com/laundryhub/slotboard/internal/model"
)

type memProfileStore struct {
    mu   sync.Mutex
    rows map[string]model.Profile
}

func newMemProfileStore() *memProfileStore {
    return &memProfileStore{rows: make(map[string]model.Profile)}
}

func (m *memProfileStore) GetAll(ctx context.Context) ([]model.Profile, error) {
    m.mu.Lock()
    defer m.mu.Unlock()
    out := make([]model.Profile, 0, len(m.rows))
    for _, p := range m.rows {
        out = append(out, p)
    }
    return out, nil
}

func (m *memProfileStore) Upsert(ctx context.Context, p model.Profile) error {
    m.mu.Lock()
    defer m.mu.Unlock()
    m.rows[p.ID] = p
    return nil
}

func TestProfileSavePublishesUpdate(t *testing.T) {
    h := hub.New()
    svc := NewProfileService(newMemProfileStore(), h)
    _, events := h.Subscribe()

    saved, err := svc.Save(context.Background(), model.Profile{ID: "u1", Name: "Anna", Color: "#ff0000"})
    require.NoError(t, err)
    assert.NotEmpty(t, saved.UpdatedAt)

    var ev ChangeEvent
    require.NoError(t, json.Unmarshal(<-events, &ev))
    assert.Equal(t, EventProfileUpdate, ev.Type)
    require.NotNil(t, ev.Profile)
    assert.Equal(t, "Anna", ev.Profile.Name)
}

func TestProfileSaveValidation(t *testing.T) {
    svc := NewProfileService(newMemProfileStore(), hub.New())

    _, err := svc.Save(context.Background(), model.Profile{ID: "u1", Name: "Anna"})
    assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileGetAllKeyedByID(t *testing.T) {
    svc := NewProfileService(newMemProfileStore(), hub.New())
    ctx := context.Background()

    _, err := svc.Save(ctx, model.Profile{ID: "u1", Name: "Anna", Color: "#ff0000"})
    require.NoError(t, err)
    _, err = svc.Save(ctx, model.Profile{ID: "u2", Name: "Ben", Color: "#0000ff"})
    require.NoError(t, err)

    all, err := svc.GetAll(ctx)
    require.NoError(t, err)
    require.Len(t, all, 2)
    assert.Equal(t, "Anna", all["u1"].Name)
    assert.Equal(t, "Ben", all["u2"].Name)
}
