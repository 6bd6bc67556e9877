package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"deskswap/internal/service"
)

// RosterHandler handles the read-only roster endpoints.
type RosterHandler struct {
	rosterService service.RosterService
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(rosterService service.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

// ListUsers godoc
// @Summary List users
// @Tags roster
// @Produce json
// @Success 200 {array} service.UserView
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *RosterHandler) ListUsers(c echo.Context) error {
	users, err := h.rosterService.ListUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// ListAllocations godoc
// @Summary List the allocation board
// @Tags roster
// @Produce json
// @Success 200 {array} service.AllocationView
// @Failure 500 {object} errors.ErrorResponse
// @Router /allocations [get]
func (h *RosterHandler) ListAllocations(c echo.Context) error {
	allocations, err := h.rosterService.ListAllocations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, allocations)
}

// ListWorkstations godoc
// @Summary List workstations
// @Tags roster
// @Produce json
// @Success 200 {array} model.Workstation
// @Failure 500 {object} errors.ErrorResponse
// @Router /workstations [get]
func (h *RosterHandler) ListWorkstations(c echo.Context) error {
	stations, err := h.rosterService.ListWorkstations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stations)
}
