package survey

import (
	"github.com/yungbote/apollo-backend/internal/domain/audit"
	"github.com/yungbote/apollo-backend/internal/domain/user"
)

// TopicUsers is the membership row between a topic and a participating user.
type TopicUsers struct {
	TopicID int64      `gorm:"primaryKey;autoIncrement:false;column:topic_id" json:"-"`
	UserID  int64      `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"-"`
	User    *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	audit.Auditable
}

func (TopicUsers) TableName() string { return "topic_users" }
