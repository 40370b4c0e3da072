package routes

import (
	"buhuchet_site/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin   = "/admin"
	PathPricing = "/pricing"
	PathQuiz    = "/quiz"
	PathReviews = "/reviews"
	PathSite    = "/site"
)

func addPublicRoutes(
	rg *gin.RouterGroup,
	pricingHandler *handlers.PricingHandler,
	quizHandler *handlers.QuizHandler,
	reviewHandler *handlers.ReviewHandler,
	siteHandler *handlers.SiteContentHandler,
) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("", pricingHandler.GetPricing)
		pricing.POST("/quote", pricingHandler.Quote)
	}

	rg.POST(PathQuiz+"/discount", quizHandler.Discount)
	rg.GET(PathReviews, reviewHandler.ListPublished)
	rg.GET(PathSite, siteHandler.Get)
}

func addAdminRoutes(
	rg *gin.RouterGroup,
	pricingHandler *handlers.PricingHandler,
	reviewHandler *handlers.ReviewHandler,
	syncHandler *handlers.ReviewSyncHandler,
	siteHandler *handlers.SiteContentHandler,
) {
	rg.PUT(PathPricing, pricingHandler.SavePricing)
	rg.PATCH(PathSite, siteHandler.Patch)

	reviews := rg.Group(PathReviews)
	{
		reviews.GET("", reviewHandler.List)
		reviews.POST("", reviewHandler.Create)
		reviews.POST("/sync", syncHandler.Sync)
		reviews.POST("/reset", syncHandler.Reset)
		reviews.GET("/:id", reviewHandler.Get)
		reviews.PATCH("/:id", reviewHandler.Update)
		reviews.DELETE("/:id", reviewHandler.Delete)
		reviews.PATCH("/:id/publish", reviewHandler.SetPublished)
		reviews.PATCH("/:id/feature", reviewHandler.SetFeatured)
	}
}
