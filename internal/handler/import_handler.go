package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"deskswap/internal/errors"
	"deskswap/internal/importer"
	"deskswap/internal/service"
)

// ImportHandler handles roster upload endpoints.
type ImportHandler struct {
	importService service.ImportService
	rosterYear    int
}

// NewImportHandler creates a new import handler.
func NewImportHandler(importService service.ImportService, rosterYear int) *ImportHandler {
	return &ImportHandler{importService: importService, rosterYear: rosterYear}
}

// ImportRoster godoc
// @Summary Import a roster spreadsheet
// @Description Accepts an .xlsx or .csv roster laid out in weekly blocks and
// @Description creates the users, workstations and allocations it describes.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Roster file (.xlsx or .csv)"
// @Success 200 {object} service.ImportSummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /import/roster [post]
func (h *ImportHandler) ImportRoster(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "missing form file \"file\"",
			Code:  "MISSING_FILE",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "cannot open uploaded file",
			Code:  "INVALID_FILE",
		})
	}
	defer file.Close()

	entries, err := importer.Load(file, fileHeader.Filename, h.rosterYear)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "PARSE_ERROR",
		})
	}

	summary, err := h.importService.ImportRoster(c.Request().Context(), entries)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "IMPORT_FAILED",
		})
	}

	return c.JSON(http.StatusOK, summary)
}
