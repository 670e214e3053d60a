package routes

import (
	"log"
	_ "funilaria_autocolor/docs" // This will be auto-generated
	"funilaria_autocolor/internal/adapter/http/handlers"
	repository2 "funilaria_autocolor/internal/adapter/persistence/repository"
	"funilaria_autocolor/internal/infrastructure/database"
	"funilaria_autocolor/internal/infrastructure/narration"
	"funilaria_autocolor/internal/usecase"
	"funilaria_autocolor/internal/usecase/interfaces"
	"os"
	"strconv"
	"strings"

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
	store := newDocumentStore()

	jobRepo := repository2.NewJobRepository(store)
	clientRepo := repository2.NewClientRepository(store)
	adminRepo := repository2.NewAdminRepository(store)
	settingsRepo := repository2.NewSettingsRepository(store)

	var narrator interfaces.INarrationGateway
	gateway, err := narration.NewGeminiNarrationGateway()
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
	} else {
		narrator = gateway
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo, clientRepo, narrator)
	authUseCase := usecase.NewAuthUseCase(adminRepo, clientRepo, jobRepo)
	adminUseCase := usecase.NewAdminUseCase(adminRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFunnelRoutes(v1, jobHandler, authHandler, adminHandler, settingsHandler)
}

// newDocumentStore picks the storage backend from STORAGE_BACKEND:
// "dynamodb" (default), "redis" or "memory".
func newDocumentStore() repository2.DocumentStore {
	backend := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_BACKEND")))
	switch backend {
	case "redis":
		log.Printf("[storage] backend=redis")
		return repository2.NewRedisDocumentStore(database.ConnectRedis())
	case "memory":
		log.Printf("[storage] backend=memory (data is not durable)")
		return repository2.NewMemoryDocumentStore()
	default:
		log.Printf("[storage] backend=dynamodb")
		return repository2.NewDynamoDocumentStore(database.ConnectDynamoDB())
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
