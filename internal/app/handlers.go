package app

import (
	"gorm.io/gorm"

	httpH "github.com/yungbote/apollo-backend/internal/http/handlers"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Role     *httpH.RoleHandler
	User     *httpH.UserHandler
	Survey   *httpH.SurveyHandler
	Context  *httpH.ContextHandler
	Question *httpH.QuestionHandler
	Topic    *httpH.TopicHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Auth:     httpH.NewAuthHandler(services.Auth, services.User),
		Role:     httpH.NewRoleHandler(services.Role),
		User:     httpH.NewUserHandler(services.User),
		Survey:   httpH.NewSurveyHandler(services.Survey, services.Question, services.Context),
		Context:  httpH.NewContextHandler(services.Context),
		Question: httpH.NewQuestionHandler(services.Question),
		Topic:    httpH.NewTopicHandler(services.Topic),
	}
}
