package survey

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/apollo-backend/internal/data/repos/stamp"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type SurveyRepo interface {
	Create(dbc dbctx.Context, surveys []*types.Survey) ([]*types.Survey, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Survey, error)
	List(dbc dbctx.Context) ([]*types.Survey, error)
	Touch(dbc dbctx.Context, survey *types.Survey) error
	DeleteByID(dbc dbctx.Context, id int64) error
}

type surveyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSurveyRepo(db *gorm.DB, baseLog *logger.Logger) SurveyRepo {
	repoLog := baseLog.With("repo", "SurveyRepo")
	return &surveyRepo{db: db, log: repoLog}
}

func (r *surveyRepo) Create(dbc dbctx.Context, surveys []*types.Survey) ([]*types.Survey, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(surveys) == 0 {
		return []*types.Survey{}, nil
	}
	stamp.Created(dbc.Ctx, surveys...)
	if err := t.WithContext(dbc.Ctx).Omit(clause.Associations).Create(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

// GetByID loads the survey with its contexts and questions. Topics are left to TopicRepo.
func (r *surveyRepo) GetByID(dbc dbctx.Context, id int64) (*types.Survey, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil, nil
	}
	var rows []*types.Survey
	if err := t.WithContext(dbc.Ctx).
		Preload("Contexts", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *surveyRepo) List(dbc dbctx.Context) ([]*types.Survey, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Survey
	if err := t.WithContext(dbc.Ctx).
		Preload("Contexts", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Touch rewrites the modification stamp; a survey has no other scalar columns.
func (r *surveyRepo) Touch(dbc dbctx.Context, survey *types.Survey) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if survey == nil || survey.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	stamp.Modified(dbc.Ctx, survey)
	res := t.WithContext(dbc.Ctx).
		Model(&types.Survey{}).
		Where("id = ?", survey.ID).
		Updates(map[string]any{
			"last_modified_by":   survey.LastModifiedBy,
			"last_modified_date": survey.LastModifiedDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *surveyRepo) DeleteByID(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).Where("id = ?", id).Delete(&types.Survey{}).Error
}
