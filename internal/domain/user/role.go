package user

import "github.com/yungbote/apollo-backend/internal/domain/audit"

type Role struct {
	ID    int64       `gorm:"primaryKey;autoIncrement;column:id" json:"roleid"`
	Name  string      `gorm:"not null;column:name" json:"name"`
	Users []UserRoles `gorm:"foreignKey:RoleID" json:"users,omitempty"`

	audit.Auditable
}

func (Role) TableName() string { return "roles" }

func NewRole(name string) *Role {
	return &Role{Name: name}
}
