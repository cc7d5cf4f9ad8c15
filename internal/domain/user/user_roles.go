package user

import "github.com/yungbote/apollo-backend/internal/domain/audit"

// UserRoles is the join row between a user and a role.
type UserRoles struct {
	UserID int64 `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"-"`
	RoleID int64 `gorm:"primaryKey;autoIncrement:false;column:role_id" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`

	audit.Auditable
}

func (UserRoles) TableName() string { return "user_roles" }

func NewUserRoles(u *User, r *Role) UserRoles {
	ur := UserRoles{User: u, Role: r}
	if u != nil {
		ur.UserID = u.ID
	}
	if r != nil {
		ur.RoleID = r.ID
	}
	return ur
}

// EffectiveRoleID prefers the nested role reference over the scalar.
func (ur UserRoles) EffectiveRoleID() int64 {
	if ur.Role != nil && ur.Role.ID != 0 {
		return ur.Role.ID
	}
	return ur.RoleID
}
