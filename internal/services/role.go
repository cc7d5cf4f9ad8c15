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

type RoleService interface {
	FindAll(dbc dbctx.Context) ([]*types.Role, error)
	FindByID(dbc dbctx.Context, id int64) (*types.Role, error)
	FindByName(dbc dbctx.Context, name string) (*types.Role, error)
	Save(dbc dbctx.Context, role *types.Role) (*types.Role, error)
	Update(dbc dbctx.Context, id int64, name string) (*types.Role, error)
	Delete(dbc dbctx.Context, id int64) error
}

type roleService struct {
	db            *gorm.DB
	log           *logger.Logger
	tx            aggregates.TxRunner
	roleRepo      repos.RoleRepo
	userRolesRepo repos.UserRolesRepo
}

func NewRoleService(
	db *gorm.DB,
	log *logger.Logger,
	tx aggregates.TxRunner,
	roleRepo repos.RoleRepo,
	userRolesRepo repos.UserRolesRepo,
) RoleService {
	if tx == nil {
		tx = aggregates.NewGormTxRunner(db, nil)
	}
	return &roleService{
		db:            db,
		log:           log.With("service", "RoleService"),
		tx:            tx,
		roleRepo:      roleRepo,
		userRolesRepo: userRolesRepo,
	}
}

func (rs *roleService) FindAll(dbc dbctx.Context) ([]*types.Role, error) {
	roles, err := rs.roleRepo.List(dbc)
	return roles, aggregates.MapError("find roles", err)
}

func (rs *roleService) FindByID(dbc dbctx.Context, id int64) (*types.Role, error) {
	role, err := rs.roleRepo.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError("find role", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role id %d not found", id)
	}
	return role, nil
}

func (rs *roleService) FindByName(dbc dbctx.Context, name string) (*types.Role, error) {
	role, err := rs.roleRepo.GetByName(dbc, name)
	if err != nil {
		return nil, aggregates.MapError("find role", err)
	}
	if role == nil {
		return nil, apperr.NotFound("Role name %s not found", normalizeName(name))
	}
	return role, nil
}

func (rs *roleService) Save(dbc dbctx.Context, role *types.Role) (*types.Role, error) {
	if role == nil {
		return nil, apperr.Validation("role is required")
	}
	fresh := &types.Role{Name: normalizeName(role.Name)}
	if fresh.Name == "" {
		return nil, apperr.Validation("role name is required")
	}
	err := aggregates.Within(rs.tx, dbc, func(dbc dbctx.Context) error {
		if role.ID == 0 {
			_, err := rs.roleRepo.Create(dbc, []*types.Role{fresh})
			return err
		}
		existing, err := rs.roleRepo.GetByID(dbc, role.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound("Role id %d not found", role.ID)
		}
		fresh.ID = existing.ID
		fresh.Auditable = existing.Auditable
		return rs.roleRepo.Update(dbc, fresh)
	})
	if err != nil {
		return nil, aggregates.MapError("save role", err)
	}
	return fresh, nil
}

func (rs *roleService) Update(dbc dbctx.Context, id int64, name string) (*types.Role, error) {
	if id == 0 {
		return nil, apperr.NotFound("Role id %d not found", id)
	}
	return rs.Save(dbc, &types.Role{ID: id, Name: name})
}

// Delete removes the role and every user link pointing at it.
func (rs *roleService) Delete(dbc dbctx.Context, id int64) error {
	err := aggregates.Within(rs.tx, dbc, func(dbc dbctx.Context) error {
		existing, err := rs.roleRepo.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound("Role id %d not found", id)
		}
		if err := rs.userRolesRepo.DeleteByRoleID(dbc, id); err != nil {
			return err
		}
		return rs.roleRepo.DeleteByID(dbc, id)
	})
	if err != nil {
		return aggregates.MapError("delete role", err)
	}
	rs.log.Info("Role deleted", "role_id", id)
	return nil
}
