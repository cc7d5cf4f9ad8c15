package services

import (
	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/data/aggregates"
	"github.com/yungbote/apollo-backend/internal/data/repos"
	types "github.com/yungbote/apollo-backend/internal/domain"
	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type TopicService interface {
	FindAll(dbc dbctx.Context) ([]*types.Topic, error)
	FindByID(dbc dbctx.Context, id int64) (*types.Topic, error)
	FindAllByOwnerID(dbc dbctx.Context, ownerID int64) ([]*types.Topic, error)
	// Save creates a topic or overwrites its title and survey. The owner and
	// the member list of a stored topic are never changed here, and only the
	// owner may overwrite it.
	Save(dbc dbctx.Context, topic *types.Topic, actingUser *types.User) (*types.Topic, error)
	Delete(dbc dbctx.Context, id int64, actingUser *types.User) error
	AddUser(dbc dbctx.Context, topicID, userID int64, actingUser *types.User) (*types.Topic, error)
	RemoveUser(dbc dbctx.Context, topicID, userID int64, actingUser *types.User) (*types.Topic, error)
}

type topicService struct {
	db             *gorm.DB
	log            *logger.Logger
	tx             aggregates.TxRunner
	topicRepo      repos.TopicRepo
	topicUsersRepo repos.TopicUsersRepo
	surveyService  SurveyService
	userService    UserService
}

func NewTopicService(
	db *gorm.DB,
	log *logger.Logger,
	tx aggregates.TxRunner,
	topicRepo repos.TopicRepo,
	topicUsersRepo repos.TopicUsersRepo,
	surveyService SurveyService,
	userService UserService,
) TopicService {
	if tx == nil {
		tx = aggregates.NewGormTxRunner(db, nil)
	}
	serviceLog := log.With("service", "TopicService")
	return &topicService{
		db:             db,
		log:            serviceLog,
		tx:             tx,
		topicRepo:      topicRepo,
		topicUsersRepo: topicUsersRepo,
		surveyService:  surveyService,
		userService:    userService,
	}
}

func (ts *topicService) FindAll(dbc dbctx.Context) ([]*types.Topic, error) {
	out, err := ts.topicRepo.List(dbc)
	return out, aggregates.MapError("find topics", err)
}

func (ts *topicService) FindByID(dbc dbctx.Context, id int64) (*types.Topic, error) {
	t, err := ts.topicRepo.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError("find topic", err)
	}
	if t == nil {
		return nil, apperr.NotFound("Topic %d Not Found", id)
	}
	return t, nil
}

func (ts *topicService) FindAllByOwnerID(dbc dbctx.Context, ownerID int64) ([]*types.Topic, error) {
	out, err := ts.topicRepo.ListByOwnerID(dbc, ownerID)
	return out, aggregates.MapError("find topics by owner", err)
}

func (ts *topicService) Save(dbc dbctx.Context, topic *types.Topic, actingUser *types.User) (*types.Topic, error) {
	if topic == nil {
		return nil, apperr.Validation("topic is required")
	}
	var savedID int64
	err := aggregates.Within(ts.tx, dbc, func(dbc dbctx.Context) error {
		fresh := &types.Topic{Title: topic.Title}
		var existing *types.Topic
		if topic.ID != 0 {
			found, err := ts.ownedTopic(dbc, topic.ID, actingUser)
			if err != nil {
				return err
			}
			existing = found
			fresh.ID = existing.ID
			fresh.OwnerID = existing.OwnerID
			fresh.Auditable = existing.Auditable
		}
		if err := validateStruct(fresh); err != nil {
			return err
		}

		survey, err := ts.surveyService.FindByID(dbc, topic.SurveyRef())
		if err != nil {
			return err
		}
		fresh.SurveyID = survey.ID

		if existing != nil {
			savedID = fresh.ID
			return ts.topicRepo.Update(dbc, fresh)
		}

		owner, err := ts.userService.FindByID(dbc, topic.OwnerRef())
		if err != nil {
			return err
		}
		fresh.OwnerID = owner.ID

		memberIDs := make([]int64, 0, len(topic.Users))
		for _, tu := range topic.Users {
			id := tu.UserID
			if tu.User != nil && tu.User.ID != 0 {
				id = tu.User.ID
			}
			member, err := ts.userService.FindByID(dbc, id)
			if err != nil {
				return err
			}
			memberIDs = append(memberIDs, member.ID)
		}

		if _, err := ts.topicRepo.Create(dbc, []*types.Topic{fresh}); err != nil {
			return err
		}
		if err := ts.topicUsersRepo.Link(dbc, fresh.ID, memberIDs); err != nil {
			return err
		}
		savedID = fresh.ID
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError("save topic", err)
	}
	return ts.FindByID(dbc, savedID)
}

// Delete removes the topic and its memberships. Only the owner may delete.
func (ts *topicService) Delete(dbc dbctx.Context, id int64, actingUser *types.User) error {
	err := aggregates.Within(ts.tx, dbc, func(dbc dbctx.Context) error {
		if _, err := ts.ownedTopic(dbc, id, actingUser); err != nil {
			return err
		}
		if err := ts.topicUsersRepo.DeleteByTopicID(dbc, id); err != nil {
			return err
		}
		return ts.topicRepo.DeleteByID(dbc, id)
	})
	if err != nil {
		return aggregates.MapError("delete topic", err)
	}
	ts.log.Info("Topic deleted", "topic_id", id, "user_id", actingUser.ID)
	return nil
}

func (ts *topicService) AddUser(dbc dbctx.Context, topicID, userID int64, actingUser *types.User) (*types.Topic, error) {
	err := aggregates.Within(ts.tx, dbc, func(dbc dbctx.Context) error {
		if _, err := ts.ownedTopic(dbc, topicID, actingUser); err != nil {
			return err
		}
		if _, err := ts.userService.FindByID(dbc, userID); err != nil {
			return err
		}
		return ts.topicUsersRepo.Link(dbc, topicID, []int64{userID})
	})
	if err != nil {
		return nil, aggregates.MapError("add topic user", err)
	}
	return ts.FindByID(dbc, topicID)
}

func (ts *topicService) RemoveUser(dbc dbctx.Context, topicID, userID int64, actingUser *types.User) (*types.Topic, error) {
	err := aggregates.Within(ts.tx, dbc, func(dbc dbctx.Context) error {
		if _, err := ts.ownedTopic(dbc, topicID, actingUser); err != nil {
			return err
		}
		return ts.topicUsersRepo.Unlink(dbc, topicID, []int64{userID})
	})
	if err != nil {
		return nil, aggregates.MapError("remove topic user", err)
	}
	return ts.FindByID(dbc, topicID)
}

func (ts *topicService) ownedTopic(dbc dbctx.Context, id int64, actingUser *types.User) (*types.Topic, error) {
	topic, err := ts.FindByID(dbc, id)
	if err != nil {
		return nil, err
	}
	if actingUser == nil || !topic.OwnedBy(actingUser.ID) {
		return nil, apperr.NotAuthorized("Topic %d may only be changed by its owner", id)
	}
	return topic, nil
}
