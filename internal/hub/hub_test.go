package hub

import (
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestPublishFansOutToAllSubscribers(t *testing.T) {
    h := New()
    _, a := h.Subscribe()
    _, b := h.Subscribe()
    _, c := h.Subscribe()

    h.Publish([]byte("one"))

    for _, ch := range []<-chan []byte{a, b, c} {
        select {
        case got := <-ch:
            assert.Equal(t, "one", string(got))
        case <-time.After(time.Second):
            t.Fatal("subscriber did not receive event")
        }
    }
}

func TestSubscribeReceivesNoBacklog(t *testing.T) {
    h := New()
    h.Publish([]byte("before"))

    _, ch := h.Subscribe()
    select {
    case got := <-ch:
        t.Fatalf("unexpected backlog delivery: %q", got)
    default:
    }
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
    h := New()
    id, ch := h.Subscribe()

    h.Unsubscribe(id)
    h.Unsubscribe(id) // second call must be a no-op
    h.Unsubscribe("never-registered")

    _, open := <-ch
    assert.False(t, open, "channel should be closed after unsubscribe")
    assert.Equal(t, 0, h.Len())
}

func TestDeadSubscriberIsDroppedOthersStillReceive(t *testing.T) {
    h := New()
    _, healthy := h.Subscribe()
    stuckID, stuck := h.Subscribe()
    _ = stuckID

    // Drain the healthy subscriber concurrently; never read from the
    // stuck one so its buffer fills up.
    var received [][]byte
    var wg sync.WaitGroup
    wg.Add(1)
    go func() {
        defer wg.Done()
        for payload := range healthy {
            received = append(received, payload)
            if len(received) == defaultBuffer+1 {
                return
            }
        }
    }()

    for i := 0; i <= defaultBuffer; i++ {
        h.Publish([]byte{byte(i)})
        time.Sleep(time.Millisecond) // give the drainer time so only the stuck buffer fills
    }
    wg.Wait()

    require.Len(t, received, defaultBuffer+1, "healthy subscriber must see every event")
    assert.Equal(t, 1, h.Len(), "stuck subscriber should have been dropped")

    // The dropped subscriber's channel is closed once its buffered
    // events are drained.
    for i := 0; i < defaultBuffer; i++ {
        <-stuck
    }
    _, open := <-stuck
    assert.False(t, open)
}

func TestConcurrentSubscribePublishUnsubscribe(t *testing.T) {
    h := New()
    var wg sync.WaitGroup
    for i := 0; i < 20; i++ {
        wg.Add(2)
        go func() {
            defer wg.Done()
            id, ch := h.Subscribe()
            go func() {
                for range ch {
                }
            }()
            h.Unsubscribe(id)
        }()
        go func() {
            defer wg.Done()
            h.Publish([]byte("x"))
        }()
    }
    wg.Wait()
}
