package handlers

import (
	"net/http"
	"strconv"

	response "propmarketing/internal/adapter/http/dto/response"
	"propmarketing/internal/usecase"
	"propmarketing/pkg"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the audit trail.

type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// ListAuditEntries returns the newest entries first; ?limit= caps the count.
func (h *AuditHandler) ListAuditEntries(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.usecase.List(c.Request.Context(), limit)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditEntries(entries))
}
