package app

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/data/aggregates"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
	"github.com/yungbote/apollo-backend/internal/seed"
	"github.com/yungbote/apollo-backend/internal/services"
)

type Services struct {
	Tx aggregates.TxRunner

	Role     services.RoleService
	User     services.UserService
	Survey   services.SurveyService
	Context  services.ContextService
	Question services.QuestionService
	Topic    services.TopicService
	Auth     services.AuthService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, txOpts *sql.TxOptions, repos Repos, hashCost int) Services {
	log.Info("Wiring services...")
	tx := aggregates.NewGormTxRunner(db, txOpts)

	role := services.NewRoleService(db, log, tx, repos.Role, repos.UserRoles)
	user := services.NewUserService(db, log, tx, repos.User, repos.UserRoles, repos.Topic, repos.TopicUsers, role, hashCost)
	survey := services.NewSurveyService(db, log, tx, repos.Survey, repos.Context, repos.Question, repos.Topic)

	return Services{
		Tx:       tx,
		Role:     role,
		User:     user,
		Survey:   survey,
		Context:  services.NewContextService(db, log, tx, repos.Context, survey),
		Question: services.NewQuestionService(db, log, tx, repos.Question, survey),
		Topic:    services.NewTopicService(db, log, tx, repos.Topic, repos.TopicUsers, survey, user),
		Auth:     services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
	}
}

func (s Services) seedServices() seed.Services {
	return seed.Services{
		Role:     s.Role,
		User:     s.User,
		Survey:   s.Survey,
		Context:  s.Context,
		Question: s.Question,
		Topic:    s.Topic,
	}
}
