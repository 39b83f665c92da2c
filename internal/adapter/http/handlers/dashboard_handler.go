package handlers

import (
	"net/http"

	response "propmarketing/internal/adapter/http/dto/response"
	"propmarketing/internal/usecase"
	"propmarketing/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated dashboard view.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	overview, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardOverview(overview))
}
