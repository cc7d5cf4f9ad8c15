package user

import "github.com/yungbote/apollo-backend/internal/domain/audit"

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;column:id" json:"userid"`
	Username string `gorm:"not null;index;column:username" json:"username"`
	Email    string `gorm:"not null;column:email" json:"primaryemail"`
	// Password holds the bcrypt hash once persisted. Never rendered.
	Password string      `gorm:"column:password" json:"-"`
	Roles    []UserRoles `gorm:"foreignKey:UserID" json:"roles,omitempty"`

	audit.Auditable
}

func (User) TableName() string { return "users" }

// NewUser builds an unsaved user. Each UserRoles entry only needs its Role (or RoleID) set.
func NewUser(username, email string, roles []UserRoles) *User {
	u := &User{Username: username, Email: email}
	for _, ur := range roles {
		ur.User = u
		u.Roles = append(u.Roles, ur)
	}
	return u
}

// RoleNames lists the names of the loaded role links.
func (u *User) RoleNames() []string {
	if u == nil {
		return nil
	}
	out := make([]string, 0, len(u.Roles))
	for _, ur := range u.Roles {
		if ur.Role != nil {
			out = append(out, ur.Role.Name)
		}
	}
	return out
}
