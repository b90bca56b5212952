package http

import (
	"strings"

	"github.com/natnat/flowershop_content_microservice/internal/config"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	config *config.HTTP,
	tokenService ports.TokenService,
	contentHandler *ContentHandler,
	authHandler *AuthHandler,
) (*Router, error) {
	if config.Env == "prod" || config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	originsList := strings.Split(config.AllowedOrigins, ",")
	for i := range originsList {
		originsList[i] = strings.TrimSpace(originsList[i])
	}
	if len(originsList) == 1 && originsList[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = originsList
	}
	corsConfig.AddAllowHeaders("Authorization")

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.New(corsConfig))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", contentHandler.Health)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/login", authHandler.Login)

	api := router.Group("/api")
	{
		api.GET("/status", contentHandler.Status)
		api.GET("/content", contentHandler.GetAll)
		api.GET("/content/:key", contentHandler.GetByKey)
	}

	admin := api.Group("/cache")
	admin.Use(AuthMiddleware(tokenService), AdminMiddleware())
	{
		admin.DELETE("", contentHandler.ClearCache)
	}

	return &Router{
		Engine: router,
	}, nil
}

// Starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
