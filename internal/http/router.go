package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/apollo-backend/internal/http/handlers"
	httpMW "github.com/yungbote/apollo-backend/internal/http/middleware"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

const adminRole = "admin"

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string

	AuthHandler     *httpH.AuthHandler
	AuthMiddleware  *httpMW.AuthMiddleware
	RoleHandler     *httpH.RoleHandler
	UserHandler     *httpH.UserHandler
	SurveyHandler   *httpH.SurveyHandler
	ContextHandler  *httpH.ContextHandler
	QuestionHandler *httpH.QuestionHandler
	TopicHandler    *httpH.TopicHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	if cfg.AuthMiddleware != nil {
		protected.Use(cfg.AuthMiddleware.RequireAuth())
	}
	admin := protected.Group("/")
	if cfg.AuthMiddleware != nil {
		admin.Use(cfg.AuthMiddleware.RequireRole(adminRole))
	}

	if cfg.AuthHandler != nil {
		protected.GET("/me", cfg.AuthHandler.Me)
	}

	// Roles
	if cfg.RoleHandler != nil {
		protected.GET("/roles", cfg.RoleHandler.List)
		protected.GET("/roles/:id", cfg.RoleHandler.Get)
		admin.POST("/roles", cfg.RoleHandler.Create)
		admin.PUT("/roles/:id", cfg.RoleHandler.Update)
		admin.DELETE("/roles/:id", cfg.RoleHandler.Delete)
	}

	// Users
	if cfg.UserHandler != nil {
		protected.GET("/users", cfg.UserHandler.List)
		protected.GET("/users/:id", cfg.UserHandler.Get)
		admin.POST("/users", cfg.UserHandler.Save)
		admin.DELETE("/users/:id", cfg.UserHandler.Delete)
		admin.POST("/users/:id/roles/:roleId", cfg.UserHandler.AddRole)
		admin.DELETE("/users/:id/roles/:roleId", cfg.UserHandler.RemoveRole)
	}

	// Surveys
	if cfg.SurveyHandler != nil {
		protected.GET("/surveys", cfg.SurveyHandler.List)
		protected.POST("/surveys", cfg.SurveyHandler.Save)
		protected.GET("/surveys/:id", cfg.SurveyHandler.Get)
		protected.DELETE("/surveys/:id", cfg.SurveyHandler.Delete)
		protected.GET("/surveys/:id/questions", cfg.SurveyHandler.Questions)
		protected.GET("/surveys/:id/contexts", cfg.SurveyHandler.Contexts)
		protected.POST("/surveys/request/:topicId", cfg.SurveyHandler.SaveRequest)
	}

	// Contexts
	if cfg.ContextHandler != nil {
		protected.GET("/contexts", cfg.ContextHandler.List)
		protected.POST("/contexts", cfg.ContextHandler.Save)
		protected.GET("/contexts/:id", cfg.ContextHandler.Get)
		protected.DELETE("/contexts/:id", cfg.ContextHandler.Delete)
	}

	// Questions
	if cfg.QuestionHandler != nil {
		protected.GET("/questions", cfg.QuestionHandler.List)
		protected.POST("/questions", cfg.QuestionHandler.Create)
		protected.GET("/questions/:id", cfg.QuestionHandler.Get)
		protected.PUT("/questions/:id", cfg.QuestionHandler.Replace)
		protected.DELETE("/questions/:id", cfg.QuestionHandler.Delete)
	}

	// Topics
	if cfg.TopicHandler != nil {
		protected.GET("/topics", cfg.TopicHandler.List)
		protected.POST("/topics", cfg.TopicHandler.Create)
		protected.GET("/topics/:id", cfg.TopicHandler.Get)
		protected.PUT("/topics/:id", cfg.TopicHandler.Update)
		protected.DELETE("/topics/:id", cfg.TopicHandler.Delete)
		protected.POST("/topics/:id/users/:userId", cfg.TopicHandler.AddUser)
		protected.DELETE("/topics/:id/users/:userId", cfg.TopicHandler.RemoveUser)
	}

	return r
}
