package routes

import (
	"crm_reporting/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathReports   = "/reports"
)

func addReportingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, reportHandler *handlers.ReportHandler) {
	estimates := rg.Group(PathEstimates)
	{
		// Intake endpoints used by the spreadsheet import pipeline.
		estimates.POST("", estimateHandler.ImportEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/archive", estimateHandler.ArchiveEstimate)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/overall", reportHandler.OverallReport)
		reports.GET("/accounts", reportHandler.AccountReport)
		reports.GET("/departments", reportHandler.DepartmentReport)
		reports.POST("/segments/refresh", reportHandler.RefreshSegments)
	}
}
