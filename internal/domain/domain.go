package domain

import (
	"github.com/yungbote/apollo-backend/internal/domain/survey"
	"github.com/yungbote/apollo-backend/internal/domain/user"
)

type (
	Role      = user.Role
	User      = user.User
	UserRoles = user.UserRoles

	Survey         = survey.Survey
	SurveyQuestion = survey.SurveyQuestion
	Context        = survey.Context
	Question       = survey.Question
	Topic          = survey.Topic
	TopicUsers     = survey.TopicUsers
)

var (
	NewRole      = user.NewRole
	NewUser      = user.NewUser
	NewUserRoles = user.NewUserRoles
	NewContext   = survey.NewContext
	NewQuestion  = survey.NewQuestion
	NewTopic     = survey.NewTopic
)

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&Role{},
		&User{},
		&UserRoles{},
		&Survey{},
		&Context{},
		&Question{},
		&Topic{},
		&TopicUsers{},
	}
}
