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

type SurveyService interface {
	FindByID(dbc dbctx.Context, id int64) (*types.Survey, error)
	FindAllSurveys(dbc dbctx.Context) ([]*types.Survey, error)
	Delete(dbc dbctx.Context, id int64) error
	Save(dbc dbctx.Context, survey *types.Survey) (*types.Survey, error)
	// SaveRequest creates a survey holding questions and points the topic at it.
	// Either every question lands or nothing does.
	SaveRequest(dbc dbctx.Context, questions []types.SurveyQuestion, topicID int64, actingUser *types.User) (*types.Survey, error)
	// FindAnchorTopic returns the lowest-id topic referencing the survey. Its
	// owner is the only user allowed to mutate the survey's questions.
	FindAnchorTopic(dbc dbctx.Context, surveyID int64) (*types.Topic, error)
}

type surveyService struct {
	db           *gorm.DB
	log          *logger.Logger
	tx           aggregates.TxRunner
	surveyRepo   repos.SurveyRepo
	contextRepo  repos.ContextRepo
	questionRepo repos.QuestionRepo
	topicRepo    repos.TopicRepo
}

func NewSurveyService(
	db *gorm.DB,
	log *logger.Logger,
	tx aggregates.TxRunner,
	surveyRepo repos.SurveyRepo,
	contextRepo repos.ContextRepo,
	questionRepo repos.QuestionRepo,
	topicRepo repos.TopicRepo,
) SurveyService {
	if tx == nil {
		tx = aggregates.NewGormTxRunner(db, nil)
	}
	serviceLog := log.With("service", "SurveyService")
	return &surveyService{
		db:           db,
		log:          serviceLog,
		tx:           tx,
		surveyRepo:   surveyRepo,
		contextRepo:  contextRepo,
		questionRepo: questionRepo,
		topicRepo:    topicRepo,
	}
}

func (ss *surveyService) FindByID(dbc dbctx.Context, id int64) (*types.Survey, error) {
	survey, err := ss.surveyRepo.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError("find survey", err)
	}
	if survey == nil {
		return nil, apperr.NotFound("Survey Id %d Not Found", id)
	}
	return survey, nil
}

func (ss *surveyService) FindAllSurveys(dbc dbctx.Context) ([]*types.Survey, error) {
	surveys, err := ss.surveyRepo.List(dbc)
	return surveys, aggregates.MapError("find surveys", err)
}

// Delete removes the survey with its contexts and questions. Surveys still
// referenced by a topic are refused.
func (ss *surveyService) Delete(dbc dbctx.Context, id int64) error {
	err := aggregates.Within(ss.tx, dbc, func(dbc dbctx.Context) error {
		if _, err := ss.FindByID(dbc, id); err != nil {
			return err
		}
		n, err := ss.topicRepo.CountBySurveyID(dbc, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.Validation("Survey Id %d is still referenced by %d topic(s)", id, n)
		}
		if err := ss.contextRepo.DeleteBySurveyID(dbc, id); err != nil {
			return err
		}
		if err := ss.questionRepo.DeleteBySurveyID(dbc, id); err != nil {
			return err
		}
		return ss.surveyRepo.DeleteByID(dbc, id)
	})
	if err != nil {
		return aggregates.MapError("delete survey", err)
	}
	ss.log.Info("Survey deleted", "survey_id", id)
	return nil
}

// Save persists the survey row only. Nested contexts and questions are saved
// through their own services.
func (ss *surveyService) Save(dbc dbctx.Context, survey *types.Survey) (*types.Survey, error) {
	if survey == nil {
		return nil, apperr.Validation("survey is required")
	}
	var savedID int64
	err := aggregates.Within(ss.tx, dbc, func(dbc dbctx.Context) error {
		fresh := &types.Survey{}
		if survey.ID == 0 {
			if _, err := ss.surveyRepo.Create(dbc, []*types.Survey{fresh}); err != nil {
				return err
			}
			savedID = fresh.ID
			return nil
		}
		existing, err := ss.FindByID(dbc, survey.ID)
		if err != nil {
			return err
		}
		fresh.ID = existing.ID
		fresh.Auditable = existing.Auditable
		savedID = fresh.ID
		return ss.surveyRepo.Touch(dbc, fresh)
	})
	if err != nil {
		return nil, aggregates.MapError("save survey", err)
	}
	return ss.FindByID(dbc, savedID)
}

func (ss *surveyService) SaveRequest(dbc dbctx.Context, questions []types.SurveyQuestion, topicID int64, actingUser *types.User) (*types.Survey, error) {
	var savedID int64
	err := aggregates.Within(ss.tx, dbc, func(dbc dbctx.Context) error {
		topic, err := ss.topicRepo.GetByID(dbc, topicID)
		if err != nil {
			return err
		}
		if topic == nil {
			return apperr.NotFound("Topic %d Not Found", topicID)
		}
		if actingUser == nil || !topic.OwnedBy(actingUser.ID) {
			return apperr.NotAuthorized("Topic %d may only be changed by its owner", topicID)
		}
		if len(questions) == 0 {
			return apperr.Validation("at least one question is required")
		}
		for i := range questions {
			if err := validateStruct(questions[i]); err != nil {
				return err
			}
		}

		survey := &types.Survey{}
		if _, err := ss.surveyRepo.Create(dbc, []*types.Survey{survey}); err != nil {
			return err
		}
		rows := make([]*types.Question, 0, len(questions))
		for _, q := range questions {
			rows = append(rows, types.NewQuestion(q.Body, q.IsLeader, q.Type, survey))
		}
		if _, err := ss.questionRepo.Create(dbc, rows); err != nil {
			return err
		}

		topic.SurveyID = survey.ID
		topic.Survey = nil
		if err := ss.topicRepo.Update(dbc, topic); err != nil {
			return err
		}
		savedID = survey.ID
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError("save survey request", err)
	}
	ss.log.Info("Survey request saved", "survey_id", savedID, "topic_id", topicID, "questions", len(questions))
	return ss.FindByID(dbc, savedID)
}

func (ss *surveyService) FindAnchorTopic(dbc dbctx.Context, surveyID int64) (*types.Topic, error) {
	topic, err := ss.topicRepo.GetAnchorBySurveyID(dbc, surveyID)
	if err != nil {
		return nil, aggregates.MapError("find anchor topic", err)
	}
	if topic == nil {
		return nil, apperr.NotFound("Survey Id %d has no topic", surveyID)
	}
	return topic, nil
}
