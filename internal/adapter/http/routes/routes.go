package routes

import (
	"log"
	"os"
	"strconv"

	_ "propmarketing/docs" // swag-generated swagger spec
	"propmarketing/internal/adapter/http/handlers"
	"propmarketing/internal/adapter/persistence/repository"
	"propmarketing/internal/infrastructure/database"
	"propmarketing/internal/usecase"

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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	serviceRepo := repository.NewServiceDynamoRepository(ddb)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb)
	auditLogRepo := repository.NewAuditLogDynamoRepository(ddb)
	adminRepo := repository.NewDataAdminRepository(serviceRepo, budgetRepo)

	// Every write path goes through the audit decorators; reads pass through.
	policy := usecase.ParseAuditFailurePolicy(os.Getenv("AUDIT_FAILURE_POLICY"))
	auditedServices := usecase.NewAuditedServiceRepository(serviceRepo, auditLogRepo, policy)
	auditedBudgets := usecase.NewAuditedBudgetRepository(budgetRepo, auditLogRepo, policy)
	auditedAdmin := usecase.NewAuditedDataAdminRepository(adminRepo, auditLogRepo, policy)

	serviceUseCase := usecase.NewServiceUseCase(auditedServices)
	budgetUseCase := usecase.NewBudgetUseCase(auditedBudgets, auditedServices)
	dashboardUseCase := usecase.NewDashboardUseCase(auditedBudgets, auditedServices)
	auditUseCase := usecase.NewAuditUseCase(auditLogRepo)
	adminUseCase := usecase.NewAdminUseCase(auditedAdmin)

	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	auditHandler := handlers.NewAuditHandler(auditUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, serviceHandler)
	addBudgetRoutes(v1, budgetHandler)
	addDashboardRoutes(v1, dashboardHandler, auditHandler, adminHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(actorMiddleware())
}

// actorMiddleware threads the acting user (X-Actor header) through the
// request context so the audit decorators can attribute writes.
func actorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := c.GetHeader("X-Actor"); actor != "" {
			c.Request = c.Request.WithContext(usecase.WithActor(c.Request.Context(), actor))
		}
		c.Next()
	}
}
