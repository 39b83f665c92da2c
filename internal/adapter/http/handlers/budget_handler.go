package handlers

import (
	"context"
	"errors"
	"net/http"

	request "propmarketing/internal/adapter/http/dto/request"
	response "propmarketing/internal/adapter/http/dto/response"
	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase"
	"propmarketing/internal/usecase/interfaces"
	"propmarketing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)

// BudgetHandler handles HTTP requests for marketing budgets.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.ToBudget())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	b := payload.ToBudget()
	b.ID = c.Param("id")

	budget, err := h.usecase.Update(c.Request.Context(), b)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ListBudgets supports ?status= and ?q= (free text over address and suburb).
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	filter := interfaces.BudgetFilter{
		Status: entities.BudgetStatus(c.Query("status")),
		Search: c.Query("q"),
	}

	budgets, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) GetBudgetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetSummary(summary))
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Approve)
}

func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Send)
}

func (h *BudgetHandler) RevertBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.RevertToDraft)
}

func (h *BudgetHandler) ArchiveBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Archive)
}

func (h *BudgetHandler) patchBudgetStatus(
	c *gin.Context,
	transition func(ctx context.Context, id string) (entities.Budget, error),
) {
	budget, err := transition(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidBudgetInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
