package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/threecommas/internal/store"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// UsersHandler serves the /users endpoints.
type UsersHandler struct {
	store store.Store
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s store.Store) *UsersHandler {
	return &UsersHandler{store: s}
}

// ModeResponse reports the active trading mode.
type ModeResponse struct {
	Mode string `json:"mode" example:"paper"`
}

// ChangeMode handles POST /users/change_mode.
func (h *UsersHandler) ChangeMode(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return invalid(c, err.Error())
	}

	mode := fields["mode"]
	if mode != threecommas.ModePaper && mode != threecommas.ModeReal {
		return invalid(c, "mode must be paper or real")
	}

	ctx := c.Request().Context()
	if err := h.store.SetMode(ctx, mode); err != nil {
		return storeError(c, err)
	}
	current, err := h.store.Mode(ctx)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, ModeResponse{Mode: current})
}
