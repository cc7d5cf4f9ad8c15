package user

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/apollo-backend/internal/data/repos/stamp"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type RoleRepo interface {
	Create(dbc dbctx.Context, rows []*types.Role) ([]*types.Role, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Role, error)
	GetByName(dbc dbctx.Context, name string) (*types.Role, error)
	List(dbc dbctx.Context) ([]*types.Role, error)
	Update(dbc dbctx.Context, row *types.Role) error
	DeleteByID(dbc dbctx.Context, id int64) error
}

type roleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoleRepo(db *gorm.DB, baseLog *logger.Logger) RoleRepo {
	return &roleRepo{db: db, log: baseLog.With("repo", "RoleRepo")}
}

func (r *roleRepo) Create(dbc dbctx.Context, rows []*types.Role) ([]*types.Role, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Role{}, nil
	}
	stamp.Created(dbc.Ctx, rows...)
	if err := t.WithContext(dbc.Ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *roleRepo) GetByID(dbc dbctx.Context, id int64) (*types.Role, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil, nil
	}
	var rows []*types.Role
	if err := t.WithContext(dbc.Ctx).
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

func (r *roleRepo) GetByName(dbc dbctx.Context, name string) (*types.Role, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	var rows []*types.Role
	if err := t.WithContext(dbc.Ctx).
		Where("name = ?", name).
		Order("id ASC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *roleRepo) List(dbc dbctx.Context) ([]*types.Role, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Role
	if err := t.WithContext(dbc.Ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *roleRepo) Update(dbc dbctx.Context, row *types.Role) error {
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

func (r *roleRepo) DeleteByID(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).Where("id = ?", id).Delete(&types.Role{}).Error
}
