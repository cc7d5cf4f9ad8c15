package survey

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/apollo-backend/internal/data/repos/stamp"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type ContextRepo interface {
	Create(dbc dbctx.Context, rows []*types.Context) ([]*types.Context, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Context, error)
	List(dbc dbctx.Context) ([]*types.Context, error)
	ListBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Context, error)
	Update(dbc dbctx.Context, row *types.Context) error
	DeleteByID(dbc dbctx.Context, id int64) error
	DeleteBySurveyID(dbc dbctx.Context, surveyID int64) error
}

type contextRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContextRepo(db *gorm.DB, baseLog *logger.Logger) ContextRepo {
	return &contextRepo{db: db, log: baseLog.With("repo", "ContextRepo")}
}

func (r *contextRepo) Create(dbc dbctx.Context, rows []*types.Context) ([]*types.Context, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Context{}, nil
	}
	stamp.Created(dbc.Ctx, rows...)
	if err := t.WithContext(dbc.Ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *contextRepo) GetByID(dbc dbctx.Context, id int64) (*types.Context, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil, nil
	}
	var rows []*types.Context
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

func (r *contextRepo) List(dbc dbctx.Context) ([]*types.Context, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Context
	if err := t.WithContext(dbc.Ctx).Preload("Survey").Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contextRepo) ListBySurveyID(dbc dbctx.Context, surveyID int64) ([]*types.Context, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Context{}
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

func (r *contextRepo) Update(dbc dbctx.Context, row *types.Context) error {
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

func (r *contextRepo) DeleteByID(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).Where("id = ?", id).Delete(&types.Context{}).Error
}

func (r *contextRepo) DeleteBySurveyID(dbc dbctx.Context, surveyID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Where("survey_id = ?", surveyID).Delete(&types.Context{}).Error
}
