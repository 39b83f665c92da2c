package handlers

import (
	"errors"
	"net/http"

	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase"
	"propmarketing/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes bulk data maintenance: export, import, seed, clear.

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ExportData(c *gin.Context) {
	data, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *AdminHandler) ImportData(c *gin.Context) {
	var payload entities.DataExport
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_IMPORT_PAYLOAD", "Invalid import payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Import(c.Request.Context(), payload); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) SeedData(c *gin.Context) {
	if err := h.usecase.Seed(c.Request.Context()); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ClearData(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context()); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyImport):
		return pkg.NewDomainErrorSimple("EMPTY_IMPORT", "Import payload contains no records", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
