package handlers

import (
	"errors"
	"net/http"

	request "crm_reporting/internal/adapter/http/dto/request"
	response "crm_reporting/internal/adapter/http/dto/response"
	"crm_reporting/internal/domain/entities"
	"crm_reporting/internal/usecase"
	"crm_reporting/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for estimate intake.
//
// The import pipeline is the only intended caller: it posts already-linked,
// already-typed records after the spreadsheet matching step.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ImportEstimate godoc
// @Summary  Import one estimate record
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    estimate  body  request.EstimateRequest  true  "Estimate record"
// @Success  201  {object}  response.EstimateResponse
// @Router   /estimates [post]
func (h *EstimateHandler) ImportEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	e, err := payload.ToEstimate()
	if err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Import(c.Request.Context(), e)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(created))
}

// GetEstimate godoc
// @Summary  Fetch one estimate by id
// @Tags     estimates
// @Produce  json
// @Param    id  path  string  true  "Estimate id"
// @Success  200  {object}  response.EstimateResponse
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// ListEstimates godoc
// @Summary  List estimates, optionally for one account
// @Tags     estimates
// @Produce  json
// @Param    account_id  query  string  false  "Filter by linked account id"
// @Success  200  {object}  response.EstimateListResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var (
		estimates []entities.Estimate
		err       error
	)
	if accountID := c.Query("account_id"); accountID != "" {
		estimates, err = h.usecase.ListByAccount(c.Request.Context(), accountID)
	} else {
		estimates, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// ArchiveEstimate godoc
// @Summary  Archive or unarchive an estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id       path  string                  true  "Estimate id"
// @Param    request  body  request.ArchiveRequest  true  "Archived flag"
// @Success  200  {object}  response.EstimateResponse
// @Router   /estimates/{id}/archive [patch]
func (h *EstimateHandler) ArchiveEstimate(c *gin.Context) {
	var payload request.ArchiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Archive(c.Request.Context(), c.Param("id"), *payload.Archived)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidAccountID),
		errors.Is(err, usecase.ErrMissingEstimateDate),
		errors.Is(err, usecase.ErrNegativeEstimateVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
