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

type ContextService interface {
	FindAll(dbc dbctx.Context) ([]*types.Context, error)
	FindByID(dbc dbctx.Context, id int64) (*types.Context, error)
	FindAllBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Context, error)
	Save(dbc dbctx.Context, c *types.Context) (*types.Context, error)
	Delete(dbc dbctx.Context, id int64) error
}

type contextService struct {
	db            *gorm.DB
	log           *logger.Logger
	tx            aggregates.TxRunner
	contextRepo   repos.ContextRepo
	surveyService SurveyService
}

func NewContextService(
	db *gorm.DB,
	log *logger.Logger,
	tx aggregates.TxRunner,
	contextRepo repos.ContextRepo,
	surveyService SurveyService,
) ContextService {
	if tx == nil {
		tx = aggregates.NewGormTxRunner(db, nil)
	}
	return &contextService{
		db:            db,
		log:           log.With("service", "ContextService"),
		tx:            tx,
		contextRepo:   contextRepo,
		surveyService: surveyService,
	}
}

func (cs *contextService) FindAll(dbc dbctx.Context) ([]*types.Context, error) {
	out, err := cs.contextRepo.List(dbc)
	return out, aggregates.MapError("find contexts", err)
}

func (cs *contextService) FindByID(dbc dbctx.Context, id int64) (*types.Context, error) {
	c, err := cs.contextRepo.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError("find context", err)
	}
	if c == nil {
		return nil, apperr.NotFound("Context %d Not Found", id)
	}
	return c, nil
}

func (cs *contextService) FindAllBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Context, error) {
	out, err := cs.contextRepo.ListBySurveyID(dbc, surveyID)
	return out, aggregates.MapError("find contexts by survey", err)
}

func (cs *contextService) Save(dbc dbctx.Context, c *types.Context) (*types.Context, error) {
	if c == nil {
		return nil, apperr.Validation("context is required")
	}
	var saved *types.Context
	err := aggregates.Within(cs.tx, dbc, func(dbc dbctx.Context) error {
		fresh := &types.Context{Name: c.Name}
		if c.ID != 0 {
			existing, err := cs.FindByID(dbc, c.ID)
			if err != nil {
				return err
			}
			fresh.ID = existing.ID
			fresh.Auditable = existing.Auditable
		}
		if err := validateStruct(fresh); err != nil {
			return err
		}
		survey, err := cs.surveyService.FindByID(dbc, c.SurveyRef())
		if err != nil {
			return err
		}
		fresh.SurveyID = survey.ID

		if fresh.ID == 0 {
			if _, err := cs.contextRepo.Create(dbc, []*types.Context{fresh}); err != nil {
				return err
			}
		} else if err := cs.contextRepo.Update(dbc, fresh); err != nil {
			return err
		}
		fresh.Survey = &types.Survey{ID: survey.ID, Auditable: survey.Auditable}
		saved = fresh
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError("save context", err)
	}
	return saved, nil
}

func (cs *contextService) Delete(dbc dbctx.Context, id int64) error {
	err := aggregates.Within(cs.tx, dbc, func(dbc dbctx.Context) error {
		if _, err := cs.FindByID(dbc, id); err != nil {
			return err
		}
		return cs.contextRepo.DeleteByID(dbc, id)
	})
	return aggregates.MapError("delete context", err)
}
