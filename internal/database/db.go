package database

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    _ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
    auth := user
    if pass != "" {
        auth = fmt.Sprintf("%s:%s", user, pass)
    }
    // parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
    dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
        auth, host, port, name)

    db, err := sql.Open("mysql", dsn)
    if err != nil {
        return nil, err
    }

    // Pool settings
    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(30 * time.Minute)

    // Ping with timeout
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        return nil, err
    }
    return db, nil
}

// EnsureSchema creates the tables the board needs when they do not exist
// yet.  The unique index on (date, time_slot) is the correctness anchor of
// the whole system: it is what rejects a concurrent double booking
// regardless of application-level timing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
    stmts := []string{
        `CREATE TABLE IF NOT EXISTS reservations (
            id         VARCHAR(191) NOT NULL,
            date       CHAR(10)     NOT NULL,
            time_slot  VARCHAR(5)   NOT NULL,
            user_id    VARCHAR(191) NOT NULL,
            user_color VARCHAR(32)  NULL,
            created_at DATETIME     NOT NULL,
            PRIMARY KEY (id),
            UNIQUE KEY uniq_slot (date, time_slot)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
        `CREATE TABLE IF NOT EXISTS profiles (
            id         VARCHAR(191) NOT NULL,
            name       VARCHAR(191) NOT NULL,
            color      VARCHAR(32)  NOT NULL,
            updated_at DATETIME     NOT NULL,
            PRIMARY KEY (id)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
        `CREATE TABLE IF NOT EXISTS access_logs (
            id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
            user_id     VARCHAR(191) NULL,
            user_name   VARCHAR(191) NULL,
            action      VARCHAR(32)  NOT NULL,
            detail      VARCHAR(512) NULL,
            ip_address  VARCHAR(64)  NULL,
            user_agent  VARCHAR(512) NULL,
            accessed_at DATETIME     NOT NULL,
            PRIMARY KEY (id),
            KEY idx_accessed_at (accessed_at)
        ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
    }
    for _, stmt := range stmts {
        if _, err := db.ExecContext(ctx, stmt); err != nil {
            return fmt.Errorf("ensure schema: %w", err)
        }
    }
    return nil
}
