package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"deskswap/internal/errors"
	"deskswap/internal/service"
)

// SwapHandler handles swap-request endpoints.
type SwapHandler struct {
	swapService service.SwapService
}

// NewSwapHandler creates a new swap handler.
func NewSwapHandler(swapService service.SwapService) *SwapHandler {
	return &SwapHandler{swapService: swapService}
}

// SwapRequestCreate represents a proposed exchange: the requester offers one
// of their own allocations for someone else's.
type SwapRequestCreate struct {
	RequesterID        uint `json:"requester_id" validate:"required"`
	OfferAllocationID  uint `json:"offer_allocation_id" validate:"required"`
	TargetAllocationID uint `json:"target_allocation_id" validate:"required"`
}

// SwapProcessRequest represents the decision on a pending request.
type SwapProcessRequest struct {
	RequestID uint   `json:"request_id" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=ACCEPT REJECT"`
}

// SwapResponse represents the outcome of a swap operation.
type SwapResponse struct {
	RequestID uint   `json:"request_id,omitempty"`
	Message   string `json:"message"`
}

// RequestSwap godoc
// @Summary Propose a shift swap
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SwapRequestCreate true "Swap proposal"
// @Success 201 {object} SwapResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /request-swap [post]
func (h *SwapHandler) RequestSwap(c echo.Context) error {
	var req SwapRequestCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	created, message, err := h.swapService.CreateRequest(
		c.Request().Context(),
		req.RequesterID,
		req.OfferAllocationID,
		req.TargetAllocationID,
	)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, SwapResponse{
		RequestID: created.ID,
		Message:   message,
	})
}

// PendingRequests godoc
// @Summary List pending swap requests addressed to a user
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "Target user ID"
// @Success 200 {array} service.PendingRequest
// @Failure 400 {object} errors.ErrorResponse
// @Router /pending-requests/{user_id} [get]
func (h *SwapHandler) PendingRequests(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user_id",
			Code:  "INVALID_USER_ID",
		})
	}

	pending, err := h.swapService.ListPending(c.Request().Context(), uint(userID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pending)
}

// ProcessSwap godoc
// @Summary Accept or reject a pending swap request
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SwapProcessRequest true "Decision"
// @Success 200 {object} SwapResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /process-swap [post]
func (h *SwapHandler) ProcessSwap(c echo.Context) error {
	var req SwapProcessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	message, err := h.swapService.ProcessRequest(c.Request().Context(), req.RequestID, req.Action)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, SwapResponse{
		RequestID: req.RequestID,
		Message:   message,
	})
}
