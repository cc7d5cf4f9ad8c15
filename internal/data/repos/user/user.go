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

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	GetByIDs(dbc dbctx.Context, userIDs []int64) ([]*types.User, error)
	GetByID(dbc dbctx.Context, userID int64) (*types.User, error)
	GetByUsername(dbc dbctx.Context, username string) (*types.User, error)
	List(dbc dbctx.Context) ([]*types.User, error)
	Update(dbc dbctx.Context, user *types.User) error
	DeleteByID(dbc dbctx.Context, userID int64) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	stamp.Created(dbc.Ctx, users...)
	if err := transaction.WithContext(dbc.Ctx).Omit(clause.Associations).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByIDs(dbc dbctx.Context, userIDs []int64) ([]*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.User
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Preload("Roles.Role").
		Where("id IN ?", userIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) GetByID(dbc dbctx.Context, userID int64) (*types.User, error) {
	if userID <= 0 {
		return nil, nil
	}
	found, err := ur.GetByIDs(dbc, []int64{userID})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return found[0], nil
}

// GetByUsername returns the oldest user holding username.
func (ur *userRepo) GetByUsername(dbc dbctx.Context, username string) (*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, nil
	}
	var results []*types.User
	if err := transaction.WithContext(dbc.Ctx).
		Preload("Roles.Role").
		Where("username = ?", username).
		Order("id ASC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (ur *userRepo) List(dbc dbctx.Context) ([]*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.User
	if err := transaction.WithContext(dbc.Ctx).
		Preload("Roles.Role").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update overwrites every scalar column of the stored row. Role links are not touched.
func (ur *userRepo) Update(dbc dbctx.Context, user *types.User) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	if user == nil || user.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	stamp.Modified(dbc.Ctx, user)
	res := transaction.WithContext(dbc.Ctx).
		Model(user).
		Select("*").
		Omit(append([]string{clause.Associations}, stamp.UpdateOmits...)...).
		Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ur *userRepo) DeleteByID(dbc dbctx.Context, userID int64) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	if userID <= 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).Where("id = ?", userID).Delete(&types.User{}).Error
}
