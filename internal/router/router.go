// Package router wires gin routes and middleware.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bizworth/docs"
	"bizworth/internal/handler"
	"bizworth/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	docH *handler.DocumentHandler,
	logoH *handler.LogoHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	extract := v1.Group("/extract")
	extract.POST("/document", docH.Extract)
	extract.POST("/logo", logoH.Extract)
	extract.GET("/logo", logoH.ExtractQuick)
	extract.POST("/brand", logoH.ExtractBrand)

	return r
}
