package routes

import (
	"log"
	"strconv"

	_ "crm_reporting/docs"
	"crm_reporting/internal/adapter/http/handlers"
	"crm_reporting/internal/adapter/persistence/repository"
	"crm_reporting/internal/infrastructure/database"
	"crm_reporting/internal/infrastructure/metrics"
	"crm_reporting/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	reportUseCase := usecase.NewReportUseCase(estimateRepo, accountRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReportingRoutes(v1, estimateHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
