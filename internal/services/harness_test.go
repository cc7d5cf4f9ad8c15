package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/data/aggregates"
	"github.com/yungbote/apollo-backend/internal/data/repos"
	"github.com/yungbote/apollo-backend/internal/data/repos/testutil"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

type testServices struct {
	db       *gorm.DB
	dbc      dbctx.Context
	roles    RoleService
	users    UserService
	surveys  SurveyService
	contexts ContextService
	question QuestionService
	topics   TopicService
	auth     AuthService
}

func newTestServices(t *testing.T, tx aggregates.TxRunner) *testServices {
	t.Helper()
	return newTestServicesOn(t, testutil.DB(t), tx)
}

func newTestServicesOn(t *testing.T, db *gorm.DB, tx aggregates.TxRunner) *testServices {
	t.Helper()
	log := testutil.Logger(t)
	if tx == nil {
		tx = aggregates.NewGormTxRunner(db, nil)
	}

	roleRepo := repos.NewRoleRepo(db, log)
	userRepo := repos.NewUserRepo(db, log)
	userRolesRepo := repos.NewUserRolesRepo(db, log)
	surveyRepo := repos.NewSurveyRepo(db, log)
	contextRepo := repos.NewContextRepo(db, log)
	questionRepo := repos.NewQuestionRepo(db, log)
	topicRepo := repos.NewTopicRepo(db, log)
	topicUsersRepo := repos.NewTopicUsersRepo(db, log)

	roles := NewRoleService(db, log, tx, roleRepo, userRolesRepo)
	users := NewUserService(db, log, tx, userRepo, userRolesRepo, topicRepo, topicUsersRepo, roles, bcrypt.MinCost)
	surveys := NewSurveyService(db, log, tx, surveyRepo, contextRepo, questionRepo, topicRepo)
	return &testServices{
		db:       db,
		dbc:      dbctx.Context{Ctx: context.Background()},
		roles:    roles,
		users:    users,
		surveys:  surveys,
		contexts: NewContextService(db, log, tx, contextRepo, surveys),
		question: NewQuestionService(db, log, tx, questionRepo, surveys),
		topics:   NewTopicService(db, log, tx, topicRepo, topicUsersRepo, surveys, users),
		auth:     NewAuthService(db, log, userRepo, "test-secret", time.Hour),
	}
}
