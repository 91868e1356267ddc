package handler

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/laundryhub/slotboard/internal/repository"
)

// AccessLogHandler exposes the audit-trail listing endpoint.  The log is
// read-only over HTTP; rows are only ever written by the queue consumer.
type AccessLogHandler struct {
    Repo *repository.AccessLogRepo
}

// NewAccessLogHandler constructs an AccessLogHandler.
func NewAccessLogHandler(r *repository.AccessLogRepo) *AccessLogHandler {
    if r == nil {
        panic("nil repository passed to NewAccessLogHandler")
    }
    return &AccessLogHandler{Repo: r}
}

// List handles GET /access-logs.  With ?summary=true it returns today's
// aggregate counts; otherwise a filtered, paged listing with the total
// match count for the pager.
func (h *AccessLogHandler) List(c echo.Context) error {
    ctx := c.Request().Context()

    if c.QueryParam("summary") == "true" {
        sum, err := h.Repo.Summary(ctx)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch access logs"})
        }
        return c.JSON(http.StatusOK, sum)
    }

    filter := repository.AccessLogFilter{
        UserID: c.QueryParam("userId"),
        Action: c.QueryParam("action"),
        Limit:  100,
    }
    if v := c.QueryParam("limit"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            filter.Limit = n
        }
    }
    if v := c.QueryParam("offset"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n >= 0 {
            filter.Offset = n
        }
    }
    var err error
    if filter.Start, err = parseBound(c.QueryParam("startDate")); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid startDate"})
    }
    if filter.End, err = parseBound(c.QueryParam("endDate")); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid endDate"})
    }

    logs, err := h.Repo.List(ctx, filter)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch access logs"})
    }
    total, err := h.Repo.Count(ctx, filter)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch access logs"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "logs":   logs,
        "total":  total,
        "limit":  filter.Limit,
        "offset": filter.Offset,
    })
}

// parseBound accepts either a full RFC3339 timestamp or a bare calendar
// date for the time filters.
func parseBound(s string) (*time.Time, error) {
    if s == "" {
        return nil, nil
    }
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return &t, nil
    }
    t, err := time.Parse("2006-01-02", s)
    if err != nil {
        return nil, err
    }
    return &t, nil
}
