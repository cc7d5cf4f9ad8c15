package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/data/repos"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type Repos struct {
	Role       repos.RoleRepo
	User       repos.UserRepo
	UserRoles  repos.UserRolesRepo
	Survey     repos.SurveyRepo
	Context    repos.ContextRepo
	Question   repos.QuestionRepo
	Topic      repos.TopicRepo
	TopicUsers repos.TopicUsersRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Role:       repos.NewRoleRepo(db, log),
		User:       repos.NewUserRepo(db, log),
		UserRoles:  repos.NewUserRolesRepo(db, log),
		Survey:     repos.NewSurveyRepo(db, log),
		Context:    repos.NewContextRepo(db, log),
		Question:   repos.NewQuestionRepo(db, log),
		Topic:      repos.NewTopicRepo(db, log),
		TopicUsers: repos.NewTopicUsersRepo(db, log),
	}
}
