package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/apollo-backend/internal/data/aggregates"
	"github.com/yungbote/apollo-backend/internal/data/repos"
	types "github.com/yungbote/apollo-backend/internal/domain"
	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
	"github.com/yungbote/apollo-backend/internal/platform/ctxutil"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type UserService interface {
	FindAll(dbc dbctx.Context) ([]*types.User, error)
	FindByID(dbc dbctx.Context, id int64) (*types.User, error)
	FindByName(dbc dbctx.Context, username string) (*types.User, error)
	// GetMe resolves the authenticated caller attached to dbc.Ctx.
	GetMe(dbc dbctx.Context) (*types.User, error)
	Save(dbc dbctx.Context, user *types.User) (*types.User, error)
	Delete(dbc dbctx.Context, id int64) error
	AddRole(dbc dbctx.Context, userID, roleID int64) (*types.User, error)
	RemoveRole(dbc dbctx.Context, userID, roleID int64) (*types.User, error)
}

type userService struct {
	db             *gorm.DB
	log            *logger.Logger
	tx             aggregates.TxRunner
	userRepo       repos.UserRepo
	userRolesRepo  repos.UserRolesRepo
	topicRepo      repos.TopicRepo
	topicUsersRepo repos.TopicUsersRepo
	roleService    RoleService
	hashCost       int
}

// userInput carries the validated scalar fields of a user write.
type userInput struct {
	Username string `validate:"required,max=255"`
	Email    string `validate:"required,email,max=320"`
}

// NewUserService wires the user service. hashCost of 0 selects bcrypt.DefaultCost.
func NewUserService(
	db *gorm.DB,
	log *logger.Logger,
	tx aggregates.TxRunner,
	userRepo repos.UserRepo,
	userRolesRepo repos.UserRolesRepo,
	topicRepo repos.TopicRepo,
	topicUsersRepo repos.TopicUsersRepo,
	roleService RoleService,
	hashCost int,
) UserService {
	if tx == nil {
		tx = aggregates.NewGormTxRunner(db, nil)
	}
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:             db,
		log:            serviceLog,
		tx:             tx,
		userRepo:       userRepo,
		userRolesRepo:  userRolesRepo,
		topicRepo:      topicRepo,
		topicUsersRepo: topicUsersRepo,
		roleService:    roleService,
		hashCost:       hashCost,
	}
}

func (us *userService) FindAll(dbc dbctx.Context) ([]*types.User, error) {
	users, err := us.userRepo.List(dbc)
	return users, aggregates.MapError("find users", err)
}

func (us *userService) FindByID(dbc dbctx.Context, id int64) (*types.User, error) {
	user, err := us.userRepo.GetByID(dbc, id)
	if err != nil {
		return nil, aggregates.MapError("find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User id %d not found", id)
	}
	return user, nil
}

func (us *userService) FindByName(dbc dbctx.Context, username string) (*types.User, error) {
	user, err := us.userRepo.GetByUsername(dbc, username)
	if err != nil {
		return nil, aggregates.MapError("find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User name %s not found", normalizeName(username))
	}
	return user, nil
}

func (us *userService) GetMe(dbc dbctx.Context) (*types.User, error) {
	rd := ctxutil.GetRequestData(dbc.Ctx)
	if rd == nil || rd.UserID == 0 {
		us.log.Warn("Request data not set in context")
		return nil, apperr.NotAuthorized("not authenticated")
	}
	return us.FindByID(dbc, rd.UserID)
}

// Save builds a fresh user from the input. On update the stored password is
// kept when none is supplied, and the role set is replaced only when the input
// names at least one role.
func (us *userService) Save(dbc dbctx.Context, user *types.User) (*types.User, error) {
	if user == nil {
		return nil, apperr.Validation("user is required")
	}
	in := userInput{
		Username: normalizeName(user.Username),
		Email:    strings.ToLower(strings.TrimSpace(user.Email)),
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var savedID int64
	err := aggregates.Within(us.tx, dbc, func(dbc dbctx.Context) error {
		fresh := &types.User{Username: in.Username, Email: in.Email}

		var existing *types.User
		if user.ID != 0 {
			found, err := us.userRepo.GetByID(dbc, user.ID)
			if err != nil {
				return err
			}
			if found == nil {
				return apperr.NotFound("User id %d not found", user.ID)
			}
			existing = found
			fresh.ID = existing.ID
			fresh.Auditable = existing.Auditable
		}

		switch {
		case user.Password != "":
			hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), us.hashCost)
			if err != nil {
				return apperr.Wrap(apperr.ErrValidation, err, "password could not be hashed")
			}
			fresh.Password = string(hash)
		case existing != nil:
			fresh.Password = existing.Password
		}

		roleIDs := make([]int64, 0, len(user.Roles))
		for _, ur := range user.Roles {
			role, err := us.resolveRole(dbc, ur)
			if err != nil {
				return err
			}
			roleIDs = append(roleIDs, role.ID)
		}

		if existing == nil {
			if _, err := us.userRepo.Create(dbc, []*types.User{fresh}); err != nil {
				return err
			}
		} else {
			if err := us.userRepo.Update(dbc, fresh); err != nil {
				return err
			}
			if len(roleIDs) > 0 {
				if err := us.userRolesRepo.DeleteByUserID(dbc, fresh.ID); err != nil {
					return err
				}
			}
		}
		if err := us.userRolesRepo.Link(dbc, fresh.ID, roleIDs); err != nil {
			return err
		}
		savedID = fresh.ID
		return nil
	})
	if err != nil {
		return nil, aggregates.MapError("save user", err)
	}
	return us.FindByID(dbc, savedID)
}

// resolveRole trusts only the id of a nested role reference, falling back to
// the name when no id is given.
func (us *userService) resolveRole(dbc dbctx.Context, ur types.UserRoles) (*types.Role, error) {
	if id := ur.EffectiveRoleID(); id != 0 {
		return us.roleService.FindByID(dbc, id)
	}
	if ur.Role != nil && strings.TrimSpace(ur.Role.Name) != "" {
		return us.roleService.FindByName(dbc, ur.Role.Name)
	}
	return nil, apperr.Validation("role reference needs an id or a name")
}

func (us *userService) Delete(dbc dbctx.Context, id int64) error {
	err := aggregates.Within(us.tx, dbc, func(dbc dbctx.Context) error {
		existing, err := us.userRepo.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperr.NotFound("User id %d not found", id)
		}
		owned, err := us.topicRepo.CountByOwnerID(dbc, id)
		if err != nil {
			return err
		}
		if owned > 0 {
			return apperr.Validation("User id %d still owns %d topic(s)", id, owned)
		}
		if err := us.userRolesRepo.DeleteByUserID(dbc, id); err != nil {
			return err
		}
		if err := us.topicUsersRepo.DeleteByUserID(dbc, id); err != nil {
			return err
		}
		return us.userRepo.DeleteByID(dbc, id)
	})
	if err != nil {
		return aggregates.MapError("delete user", err)
	}
	us.log.Info("User deleted", "user_id", id)
	return nil
}

func (us *userService) AddRole(dbc dbctx.Context, userID, roleID int64) (*types.User, error) {
	err := aggregates.Within(us.tx, dbc, func(dbc dbctx.Context) error {
		if _, err := us.FindByID(dbc, userID); err != nil {
			return err
		}
		if _, err := us.roleService.FindByID(dbc, roleID); err != nil {
			return err
		}
		return us.userRolesRepo.Link(dbc, userID, []int64{roleID})
	})
	if err != nil {
		return nil, aggregates.MapError("add role", err)
	}
	return us.FindByID(dbc, userID)
}

func (us *userService) RemoveRole(dbc dbctx.Context, userID, roleID int64) (*types.User, error) {
	err := aggregates.Within(us.tx, dbc, func(dbc dbctx.Context) error {
		if _, err := us.FindByID(dbc, userID); err != nil {
			return err
		}
		return us.userRolesRepo.Unlink(dbc, userID, []int64{roleID})
	})
	if err != nil {
		return nil, aggregates.MapError("remove role", err)
	}
	return us.FindByID(dbc, userID)
}
