package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itinera/internal/api/controllers"
	"itinera/internal/config"
	"itinera/pkg/middleware"
	"itinera/pkg/utils"
)

func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	itineraryController *controllers.ItineraryController,
	poisController *controllers.POIsController) *gin.Engine {

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, itineraryController, poisController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	itineraryController *controllers.ItineraryController,
	poisController *controllers.POIsController) {

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"status": "ok"}, http.StatusText(http.StatusOK))
	})

	r.GET("/interests", itineraryController.ListInterests)
	r.GET("/tuning", itineraryController.PreviewTuning)
	r.POST("/itineraries", middleware.RateLimitMiddleware(cfg.RateLimitPerMinute), itineraryController.GenerateItinerary)

	r.GET("/pois/:country", poisController.GetPoisByCountry)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RoleMiddleware(utils.RoleAdmin))
	adminGroup.POST("/pois", poisController.UpsertPoi)
	adminGroup.DELETE("/pois/:id", poisController.DeletePoi)
}
