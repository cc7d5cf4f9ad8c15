package user

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/apollo-backend/internal/data/repos/stamp"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type UserRolesRepo interface {
	// Link inserts (user, role) pairs; pairs that already exist are left alone.
	Link(dbc dbctx.Context, userID int64, roleIDs []int64) error
	Unlink(dbc dbctx.Context, userID int64, roleIDs []int64) error
	ListByUserID(dbc dbctx.Context, userID int64) ([]*types.UserRoles, error)
	DeleteByUserID(dbc dbctx.Context, userID int64) error
	DeleteByRoleID(dbc dbctx.Context, roleID int64) error
}

type userRolesRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRolesRepo(db *gorm.DB, baseLog *logger.Logger) UserRolesRepo {
	return &userRolesRepo{db: db, log: baseLog.With("repo", "UserRolesRepo")}
}

func (r *userRolesRepo) Link(dbc dbctx.Context, userID int64, roleIDs []int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID <= 0 || len(roleIDs) == 0 {
		return nil
	}
	rows := make([]*types.UserRoles, 0, len(roleIDs))
	seen := map[int64]bool{}
	for _, id := range roleIDs {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, &types.UserRoles{UserID: userID, RoleID: id})
	}
	if len(rows) == 0 {
		return nil
	}
	stamp.Created(dbc.Ctx, rows...)
	return t.WithContext(dbc.Ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *userRolesRepo) Unlink(dbc dbctx.Context, userID int64, roleIDs []int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if userID <= 0 || len(roleIDs) == 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).
		Where("user_id = ? AND role_id IN ?", userID, roleIDs).
		Delete(&types.UserRoles{}).Error
}

func (r *userRolesRepo) ListByUserID(dbc dbctx.Context, userID int64) ([]*types.UserRoles, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.UserRoles
	if userID <= 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Preload("Role").
		Where("user_id = ?", userID).
		Order("role_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRolesRepo) DeleteByUserID(dbc dbctx.Context, userID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Where("user_id = ?", userID).Delete(&types.UserRoles{}).Error
}

func (r *userRolesRepo) DeleteByRoleID(dbc dbctx.Context, roleID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Where("role_id = ?", roleID).Delete(&types.UserRoles{}).Error
}
