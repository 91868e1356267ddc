package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/laundryhub/slotboard/internal/model"
    "github.com/laundryhub/slotboard/internal/repository"
)

// StartAccessLogConsumer connects to RabbitMQ, declares the access.events
// queue (durable), and starts consuming messages.  Each message becomes a
// row in the access_logs table.  The function runs a reconnect loop with
// exponential backoff and never returns under normal operation; processing
// errors are logged and the offending message rejected without requeue so
// one bad payload cannot wedge the pipeline.
func StartAccessLogConsumer(repo *repository.AccessLogRepo) error {
    url := brokerURL()

    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("access-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeLoop(conn, repo); err != nil {
            log.Printf("access-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
            continue
        }
    }
}

func consumeLoop(conn *amqp.Connection, repo *repository.AccessLogRepo) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("access-consumer: set QoS failed: %v", err)
    }

    _, err = ch.QueueDeclare(AccessEventQueue, true, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.Consume(AccessEventQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := handleMessage(d.Body, repo); err != nil {
            log.Printf("access-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, repo *repository.AccessLogRepo) error {
    var ev AccessEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    entry := model.AccessLog{
        UserID:     optional(ev.UserID),
        UserName:   optional(ev.UserName),
        Action:     ev.Action,
        Detail:     optional(ev.Detail),
        IPAddress:  optional(ev.IPAddress),
        UserAgent:  optional(ev.UserAgent),
        AccessedAt: ev.AccessedAt,
    }
    if entry.AccessedAt == "" {
        entry.AccessedAt = time.Now().UTC().Format(time.RFC3339)
    }
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if _, err := repo.Insert(ctx, entry); err != nil {
        return fmt.Errorf("insert access log: %w", err)
    }
    return nil
}

func optional(s string) *string {
    if s == "" {
        return nil
    }
    return &s
}
