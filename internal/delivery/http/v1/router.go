package v1

import (
	"net/http"
	"time"

	"go-mentorship-backend/config"
	"go-mentorship-backend/internal/delivery/http/middleware"
	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"
	"go-mentorship-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SearchUC     domain.SearchUsecase
	ProfileUC    domain.ProfileUsecase
	RequestUC    domain.RequestUsecase
	SessionUC    domain.SessionUsecase
	ProfileRepo  domain.ProfileRepository
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.ProfileRepo))
	{
		NewMentorHandler(protected, deps.SearchUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewRequestHandler(protected, deps.RequestUC)
		NewSessionHandler(protected, deps.SessionUC)
		NewDashboardHandler(protected, deps.RequestUC, deps.SessionUC)
	}

	return r
}
