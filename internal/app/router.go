package app

import (
	apphttp "github.com/yungbote/apollo-backend/internal/http"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

func routerConfig(log *logger.Logger, cfg Config, otelEnabled bool, handlers Handlers, middleware Middleware) apphttp.RouterConfig {
	rc := apphttp.RouterConfig{
		Log:             log,
		CORSOrigins:     cfg.CORSOrigins,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		AuthMiddleware:  middleware.Auth,
		RoleHandler:     handlers.Role,
		UserHandler:     handlers.User,
		SurveyHandler:   handlers.Survey,
		ContextHandler:  handlers.Context,
		QuestionHandler: handlers.Question,
		TopicHandler:    handlers.Topic,
	}
	if otelEnabled {
		rc.ServiceName = cfg.OtelServiceName
	}
	return rc
}
