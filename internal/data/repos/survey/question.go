package survey

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/apollo-backend/internal/data/repos/stamp"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type QuestionRepo interface {
	Create(dbc dbctx.Context, rows []*types.Question) ([]*types.Question, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Question, error)
	List(dbc dbctx.Context) ([]*types.Question, error)
	ListBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Question, error)
	Update(dbc dbctx.Context, row *types.Question) error
	DeleteByID(dbc dbctx.Context, id int64) error
	DeleteBySurveyID(dbc dbctx.Context, surveyID int64) error
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	repoLog := baseLog.With("repo", "QuestionRepo")
	return &questionRepo{db: db, log: repoLog}
}

func (r *questionRepo) Create(dbc dbctx.Context, rows []*types.Question) ([]*types.Question, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Question{}, nil
	}
	stamp.Created(dbc.Ctx, rows...)
	if err := t.WithContext(dbc.Ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *questionRepo) GetByID(dbc dbctx.Context, id int64) (*types.Question, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil, nil
	}
	var rows []*types.Question
	if err := t.WithContext(dbc.Ctx).
		Preload("Survey").
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

func (r *questionRepo) List(dbc dbctx.Context) ([]*types.Question, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Question
	if err := t.WithContext(dbc.Ctx).Preload("Survey").Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionRepo) ListBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Question, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Question{}
	if surveyID <= 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Preload("Survey").
		Where("survey_id = ?", surveyID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *questionRepo) Update(dbc dbctx.Context, row *types.Question) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	stamp.Modified(dbc.Ctx, row)
	res := t.WithContext(dbc.Ctx).
		Model(row).
		Select("*").
		Omit(append([]string{clause.Associations}, stamp.UpdateOmits...)...).
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *questionRepo) DeleteByID(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).Where("id = ?", id).Delete(&types.Question{}).Error
}

func (r *questionRepo) DeleteBySurveyID(dbc dbctx.Context, surveyID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Where("survey_id = ?", surveyID).Delete(&types.Question{}).Error
}
