package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/data/aggregates"
	"github.com/yungbote/apollo-backend/internal/data/repos"
	types "github.com/yungbote/apollo-backend/internal/domain"
	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type QuestionService interface {
	FindByID(dbc dbctx.Context, id int64) (*types.Question, error)
	FindAllQuestions(dbc dbctx.Context) ([]*types.Question, error)
	FindAllBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Question, error)
	// Delete removes the question when actingUser owns the survey's anchor topic.
	Delete(dbc dbctx.Context, id int64, actingUser *types.User) error
	// Save inserts when question.ID is 0 and overwrites the stored row otherwise.
	Save(dbc dbctx.Context, question *types.Question) (*types.Question, error)
	// Update is not implemented; use Save.
	Update(dbc dbctx.Context, question *types.Question) (*types.Question, error)
}

type questionService struct {
	db            *gorm.DB
	log           *logger.Logger
	tx            aggregates.TxRunner
	questionRepo  repos.QuestionRepo
	surveyService SurveyService
}

func NewQuestionService(
	db *gorm.DB,
	log *logger.Logger,
	tx aggregates.TxRunner,
	questionRepo repos.QuestionRepo,
	surveyService SurveyService,
) QuestionService {
	if tx == nil {
		tx = aggregates.NewGormTxRunner(db, nil)
	}
	serviceLog := log.With("service", "QuestionService")
	return &questionService{
		db:            db,
		log:           serviceLog,
		tx:            tx,
		questionRepo:  questionRepo,
		surveyService: surveyService,
	}
}

func (qs *questionService) FindByID(dbc dbctx.Context, id int64) (*types.Question, error) {
	q, err := qs.questionRepo.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError("find question", err)
	}
	if q == nil {
		return nil, apperr.NotFound("Question %d Not Found", id)
	}
	return q, nil
}

func (qs *questionService) FindAllQuestions(dbc dbctx.Context) ([]*types.Question, error) {
	out, err := qs.questionRepo.List(dbc)
	return out, aggregates.MapError("find questions", err)
}

func (qs *questionService) FindAllBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Question, error) {
	out, err := qs.questionRepo.ListBySurveyID(dbc, surveyID)
	return out, aggregates.MapError("find questions by survey", err)
}

func (qs *questionService) Delete(dbc dbctx.Context, id int64, actingUser *types.User) error {
	err := aggregates.Within(qs.tx, dbc, func(dbc dbctx.Context) error {
		q, err := qs.FindByID(dbc, id)
		if err != nil {
			return err
		}
		if actingUser == nil || actingUser.ID == 0 {
			return apperr.NotAuthorized("Question %d may only be deleted by its topic owner", id)
		}
		anchor, err := qs.surveyService.FindAnchorTopic(dbc, q.SurveyRef())
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotAuthorized("Question %d has no topic owner", id)
		}
		if err != nil {
			return err
		}
		if !anchor.OwnedBy(actingUser.ID) {
			return apperr.NotAuthorized("User id %d is not the owner of question %d", actingUser.ID, id)
		}
		return qs.questionRepo.DeleteByID(dbc, id)
	})
	if err != nil {
		return aggregates.MapError("delete question", err)
	}
	qs.log.Info("Question deleted", "question_id", id, "user_id", actingUser.ID)
	return nil
}

func (qs *questionService) Save(dbc dbctx.Context, question *types.Question) (*types.Question, error) {
	if question == nil {
		return nil, apperr.Validation("question is required")
	}
	var saved *types.Question
	err := aggregates.Within(qs.tx, dbc, func(dbc dbctx.Context) error {
		fresh := &types.Question{
			Body:     question.Body,
			IsLeader: question.IsLeader,
			Type:     question.Type,
		}
		if question.ID != 0 {
			existing, err := qs.FindByID(dbc, question.ID)
			if err != nil {
				return err
			}
			fresh.ID = existing.ID
			fresh.Auditable = existing.Auditable
		}
		if err := validateStruct(fresh); err != nil {
			return err
		}

		survey, err := qs.surveyService.FindByID(dbc, question.SurveyRef())
		if err != nil {
			return err
		}
		fresh.SurveyID = survey.ID

		if fresh.ID == 0 {
			if _, err := qs.questionRepo.Create(dbc, []*types.Question{fresh}); err != nil {
				return err
			}
		} else if err := qs.questionRepo.Update(dbc, fresh); err != nil {
			return err
		}
		fresh.Survey = &types.Survey{ID: survey.ID, Auditable: survey.Auditable}
		saved = fresh
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError("save question", err)
	}
	return saved, nil
}

func (qs *questionService) Update(dbc dbctx.Context, question *types.Question) (*types.Question, error) {
	return nil, apperr.ErrNotImplemented
}
