package handler

import (
    "errors"
    "fmt"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/laundryhub/slotboard/internal/model"
    "github.com/laundryhub/slotboard/internal/queue"
    "github.com/laundryhub/slotboard/internal/service"
)

// ReservationHandler exposes the booking endpoints.  All outcomes are
// explicit: a booking attempt always ends in exactly one of success,
// validation error, AlreadyBooked conflict or NotFound — never silence.
type ReservationHandler struct {
    Service *service.ReservationService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(s *service.ReservationService) *ReservationHandler {
    if s == nil {
        panic("nil service passed to NewReservationHandler")
    }
    return &ReservationHandler{Service: s}
}

// List handles GET /reservations.  It returns the full snapshot clients
// reconcile against before applying stream events.
func (h *ReservationHandler) List(c echo.Context) error {
    reservations, err := h.Service.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch reservations"})
    }
    return c.JSON(http.StatusOK, reservations)
}

// Create handles POST /reservations.  The request body carries the draft
// fields; id and createdAt are assigned server-side.
func (h *ReservationHandler) Create(c echo.Context) error {
    var draft model.ReservationDraft
    if err := c.Bind(&draft); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    res, err := h.Service.Create(c.Request().Context(), draft)
    if err != nil {
        switch {
        case errors.Is(err, service.ErrValidation):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
        case errors.Is(err, service.ErrAlreadyBooked):
            return c.JSON(http.StatusConflict, echo.Map{"error": "Slot already reserved"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create reservation"})
        }
    }
    audit(c, queue.AccessEvent{
        UserID: res.UserID,
        Action: model.ActionReservationCreate,
        Detail: fmt.Sprintf("%s %s", res.Date, res.TimeSlot),
    })
    return c.JSON(http.StatusCreated, res)
}

// Delete handles DELETE /reservations?date=&timeSlot=&userId=.  The slot
// key alone identifies the reservation; userId is recorded for auditing.
func (h *ReservationHandler) Delete(c echo.Context) error {
    date := c.QueryParam("date")
    timeSlot := c.QueryParam("timeSlot")
    if date == "" || timeSlot == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing date or timeSlot"})
    }
    removed, err := h.Service.Cancel(c.Request().Context(), date, timeSlot)
    if err != nil {
        switch {
        case errors.Is(err, service.ErrValidation):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing date or timeSlot"})
        case errors.Is(err, service.ErrNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "Reservation not found"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete reservation"})
        }
    }
    audit(c, queue.AccessEvent{
        UserID: c.QueryParam("userId"),
        Action: model.ActionReservationDelete,
        Detail: fmt.Sprintf("%s %s", removed.Date, removed.TimeSlot),
    })
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}
