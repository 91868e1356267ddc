package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/laundryhub/slotboard/internal/model"
    "github.com/laundryhub/slotboard/internal/queue"
    "github.com/laundryhub/slotboard/internal/service"
)

// ProfileHandler exposes the profile endpoints consumed by the color
// picker UI.
type ProfileHandler struct {
    Service *service.ProfileService
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
    if s == nil {
        panic("nil service passed to NewProfileHandler")
    }
    return &ProfileHandler{Service: s}
}

// GetAll handles GET /profiles, returning all profiles keyed by user id.
func (h *ProfileHandler) GetAll(c echo.Context) error {
    profiles, err := h.Service.GetAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch profiles"})
    }
    return c.JSON(http.StatusOK, profiles)
}

// Save handles POST /profiles, upserting the caller's profile.
func (h *ProfileHandler) Save(c echo.Context) error {
    var p model.Profile
    if err := c.Bind(&p); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    saved, err := h.Service.Save(c.Request().Context(), p)
    if err != nil {
        if errors.Is(err, service.ErrValidation) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to save profile"})
    }
    audit(c, queue.AccessEvent{
        UserID:   saved.ID,
        UserName: saved.Name,
        Action:   model.ActionProfileUpdate,
        Detail:   "color: " + saved.Color,
    })
    return c.JSON(http.StatusOK, saved)
}
