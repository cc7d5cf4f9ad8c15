package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/data/repos/survey"
	"github.com/yungbote/apollo-backend/internal/data/repos/user"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type RoleRepo = user.RoleRepo
type UserRepo = user.UserRepo
type UserRolesRepo = user.UserRolesRepo

type SurveyRepo = survey.SurveyRepo
type ContextRepo = survey.ContextRepo
type QuestionRepo = survey.QuestionRepo
type TopicRepo = survey.TopicRepo
type TopicUsersRepo = survey.TopicUsersRepo

func NewRoleRepo(db *gorm.DB, baseLog *logger.Logger) RoleRepo { return user.NewRoleRepo(db, baseLog) }
func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewUserRolesRepo(db *gorm.DB, baseLog *logger.Logger) UserRolesRepo {
	return user.NewUserRolesRepo(db, baseLog)
}

func NewSurveyRepo(db *gorm.DB, baseLog *logger.Logger) SurveyRepo {
	return survey.NewSurveyRepo(db, baseLog)
}
func NewContextRepo(db *gorm.DB, baseLog *logger.Logger) ContextRepo {
	return survey.NewContextRepo(db, baseLog)
}
func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return survey.NewQuestionRepo(db, baseLog)
}
func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	return survey.NewTopicRepo(db, baseLog)
}
func NewTopicUsersRepo(db *gorm.DB, baseLog *logger.Logger) TopicUsersRepo {
	return survey.NewTopicUsersRepo(db, baseLog)
}
