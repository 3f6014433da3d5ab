package handlers

import (
	"errors"
	"net/http"

	request "crm_reporting/internal/adapter/http/dto/request"
	response "crm_reporting/internal/adapter/http/dto/response"
	"crm_reporting/internal/usecase"
	"crm_reporting/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReportQuery = pkg.NewDomainErrorSimple("INVALID_REPORT_QUERY", "Invalid report query", http.StatusBadRequest)
)

// ReportHandler serves the win/loss reports and the segment refresh.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// OverallReport godoc
// @Summary  Portfolio-wide win/loss statistics
// @Tags     reports
// @Produce  json
// @Param    year       query  int   false  "Restrict to one calendar year"
// @Param    sold_only  query  bool  false  "Drop lost estimates (year view only)"
// @Success  200  {object}  response.OverallReportResponse
// @Router   /reports/overall [get]
func (h *ReportHandler) OverallReport(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}

	stats, err := h.usecase.Overall(c.Request.Context(), usecase.ReportFilter{Year: q.Year, SoldOnly: q.SoldOnly})
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OverallReportResponse{Year: q.Year, SoldOnly: q.SoldOnly, Stats: stats})
}

// AccountReport godoc
// @Summary  Win/loss statistics per account
// @Tags     reports
// @Produce  json
// @Param    year       query  int   false  "Restrict to one calendar year"
// @Param    sold_only  query  bool  false  "Drop lost estimates (year view only)"
// @Success  200  {object}  response.AccountReportResponse
// @Router   /reports/accounts [get]
func (h *ReportHandler) AccountReport(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}

	groups, err := h.usecase.ByAccount(c.Request.Context(), usecase.ReportFilter{Year: q.Year, SoldOnly: q.SoldOnly})
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AccountReportResponse{Year: q.Year, SoldOnly: q.SoldOnly, Accounts: groups})
}

// DepartmentReport godoc
// @Summary  Win/loss statistics per division
// @Tags     reports
// @Produce  json
// @Param    year       query  int   false  "Restrict to one calendar year"
// @Param    sold_only  query  bool  false  "Drop lost estimates (year view only)"
// @Success  200  {object}  response.DepartmentReportResponse
// @Router   /reports/departments [get]
func (h *ReportHandler) DepartmentReport(c *gin.Context) {
	q, ok := bindReportQuery(c)
	if !ok {
		return
	}

	groups, err := h.usecase.ByDepartment(c.Request.Context(), usecase.ReportFilter{Year: q.Year, SoldOnly: q.SoldOnly})
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.DepartmentReportResponse{Year: q.Year, SoldOnly: q.SoldOnly, Departments: groups})
}

// RefreshSegments godoc
// @Summary  Recompute account revenue segments for a year
// @Tags     reports
// @Produce  json
// @Param    year  query  int  true  "Target calendar year"
// @Success  200  {object}  response.SegmentRefreshResponse
// @Router   /reports/segments/refresh [post]
func (h *ReportHandler) RefreshSegments(c *gin.Context) {
	var q request.SegmentRefreshQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidReportQuery.HTTPStatus, errInvalidReportQuery.ToHTTPError())
		return
	}

	accounts, err := h.usecase.RefreshSegments(c.Request.Context(), q.Year)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SegmentRefreshResponse{Year: q.Year, Accounts: response.FromAccounts(accounts)})
}

func bindReportQuery(c *gin.Context) (request.ReportQuery, bool) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidReportQuery.HTTPStatus, errInvalidReportQuery.ToHTTPError())
		return request.ReportQuery{}, false
	}
	return q, true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportYear):
		return pkg.NewDomainErrorSimple("INVALID_REPORT_YEAR", "Report year outside supported range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
