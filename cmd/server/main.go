package main // Entry point package

import (
    "context"
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/laundryhub/slotboard/internal/config"
    "github.com/laundryhub/slotboard/internal/database"
    "github.com/laundryhub/slotboard/internal/handler"
    "github.com/laundryhub/slotboard/internal/hub"
    appmw "github.com/laundryhub/slotboard/internal/middleware"
    "github.com/laundryhub/slotboard/internal/queue"
    "github.com/laundryhub/slotboard/internal/repository"
    "github.com/laundryhub/slotboard/internal/router"
    "github.com/laundryhub/slotboard/internal/service"
)

func main() {
    _ = godotenv.Load() // .env is optional; real deployments set the environment directly
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    if err := database.EnsureSchema(context.Background(), db); err != nil {
        log.Fatalf("database: %v", err)
    }

    reservationRepo := repository.NewReservationRepo(db)
    profileRepo := repository.NewProfileRepo(db)
    accessLogRepo := repository.NewAccessLogRepo(db)

    reservationHub := hub.New()
    profileHub := hub.New()

    reservationSvc := service.NewReservationService(reservationRepo, reservationHub)
    profileSvc := service.NewProfileService(profileRepo, profileHub)

    // Background consumer persists audit events arriving over the broker.
    go func() {
        if err := queue.StartAccessLogConsumer(accessLogRepo); err != nil {
            log.Printf("access-log consumer stopped: %v", err)
        }
    }()

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; caching and rate limiting disabled")
    }
    cacheMW := appmw.NewRedisCache(config.LoadCacheConfig(), rdb)
    limitMW := appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    e := echo.New()
    e.HideBanner = true
    router.RegisterRoutes(e, router.Handlers{
        Reservations: handler.NewReservationHandler(reservationSvc),
        Profiles:     handler.NewProfileHandler(profileSvc),
        AccessLogs:   handler.NewAccessLogHandler(accessLogRepo),
        Streams:      handler.NewStreamHandler(reservationHub, profileHub),
    }, cacheMW, limitMW)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
