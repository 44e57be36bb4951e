package handler

import (
	"github.com/gin-contrib/cors"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"tagvorto/internal/config"
	"tagvorto/internal/logger"
	"tagvorto/internal/middleware"
	"tagvorto/internal/service"
)

// NewRouter assembles the gin engine: compression, CORS, request IDs,
// no-store cache headers, JWT-gated game routes, and a public health check.
func NewRouter(cfg *config.Config, svc *service.GuessService) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(middleware.RequestID())
	router.Use(middleware.NoStore())

	if len(cfg.Server.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.Server.CORSOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		router.Use(cors.New(corsCfg))
	}

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logger.Warn("failed to set trusted proxies", "err", err)
	}

	h := NewGameHandler(svc, cfg.Server.Env)
	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	api := router.Group("/api/game", middleware.JWTAuth([]byte(cfg.Auth.JWTSecret)))
	api.POST("/guess", limiter.Middleware(), h.SubmitGuess)
	api.GET("/state", h.GetState)

	router.GET("/healthz", h.Healthz)

	return router
}
