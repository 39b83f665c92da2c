package handlers

import (
	"errors"
	"net/http"

	request "propmarketing/internal/adapter/http/dto/request"
	response "propmarketing/internal/adapter/http/dto/response"
	"propmarketing/internal/domain/entities"
	"propmarketing/internal/usecase"
	"propmarketing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceHandler handles HTTP requests for the vendor service catalog.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	service, err := h.usecase.Create(c.Request.Context(), payload.ToService())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(service))
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	s := payload.ToService()
	s.ID = c.Param("id")

	service, err := h.usecase.Update(c.Request.Context(), s)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ResolveServicePrice previews variant resolution for a given context:
// ?size=&tier=&variant_id=. An unresolved price comes back with
// resolved=false, never an error.
func (h *ServiceHandler) ResolveServicePrice(c *gin.Context) {
	rctx := entities.ResolutionContext{
		PropertySize: c.Query("size"),
		SuburbTier:   c.Query("tier"),
	}

	price, err := h.usecase.ResolvePrice(c.Request.Context(), c.Param("id"), rctx, c.Query("variant_id"))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, price)
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidServiceInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
