package routes

import (
	"context"
	"log"
	"os"

	_ "buhuchet_site/docs" // generated by swag init
	"buhuchet_site/internal/adapter/http/handlers"
	"buhuchet_site/internal/adapter/persistence/repository"
	"buhuchet_site/internal/infrastructure/database"
	"buhuchet_site/internal/infrastructure/reviewsource"
	"buhuchet_site/internal/usecase"
	"buhuchet_site/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultPort = "8080"

// Storage back-ends selectable with STORAGE_BACKEND.
const (
	StorageDynamoDB = "dynamodb"
	StorageFile     = "file"
)

type stores struct {
	reviews interfaces.IReviewRepository
	pricing interfaces.IPricingConfigRepository
	site    interfaces.ISiteContentRepository
}

// Run will start the server
func Run() {
	st, err := newStores(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	router := newRouter(st)

	port := getenvDefault("PORT", defaultPort)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// newRouter wires use cases and handlers on top of the given stores.
func newRouter(st stores) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pricingHandler := handlers.NewPricingHandler(usecase.NewPricingUseCase(st.pricing))
	quizHandler := handlers.NewQuizHandler(usecase.NewQuizUseCase())
	reviewHandler := handlers.NewReviewHandler(usecase.NewReviewUseCase(st.reviews))
	reviewSyncHandler := handlers.NewReviewSyncHandler(usecase.NewReviewSyncUseCase(st.reviews, reviewsource.NewYandexSourceFromEnv()))
	siteHandler := handlers.NewSiteContentHandler(usecase.NewSiteContentUseCase(st.site))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, pricingHandler, quizHandler, reviewHandler, siteHandler)

	// Admin routes. Authentication is done by the reverse proxy in front of the service.
	admin := v1.Group(PathAdmin)
	addAdminRoutes(admin, pricingHandler, reviewHandler, reviewSyncHandler, siteHandler)

	return router
}

func newStores(ctx context.Context) (stores, error) {
	backend := getenvDefault("STORAGE_BACKEND", StorageDynamoDB)
	log.Printf("[routes][storage] backend=%s", backend)

	switch backend {
	case StorageFile:
		dir := getenvDefault("DATA_DIR", "./data")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return stores{}, err
		}
		return stores{
			reviews: repository.NewReviewFileRepository(dir),
			pricing: repository.NewPricingConfigFileRepository(dir),
			site:    repository.NewSiteContentFileRepository(dir),
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return stores{}, err
		}
		return stores{
			reviews: repository.NewReviewDynamoRepository(ddb),
			pricing: repository.NewPricingConfigDynamoRepository(ddb),
			site:    repository.NewSiteContentDynamoRepository(ddb),
		}, nil
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
