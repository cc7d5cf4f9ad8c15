package survey

import (
	"github.com/yungbote/apollo-backend/internal/domain/audit"
	"github.com/yungbote/apollo-backend/internal/domain/user"
)

type Topic struct {
	ID       int64        `gorm:"primaryKey;autoIncrement;column:id" json:"topicid"`
	Title    string       `gorm:"not null;column:title" json:"title" validate:"required"`
	OwnerID  int64        `gorm:"not null;index;column:owner_id" json:"-"`
	Owner    *user.User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	SurveyID int64        `gorm:"not null;index;column:survey_id" json:"-"`
	Survey   *Survey      `gorm:"foreignKey:SurveyID" json:"survey,omitempty"`
	Users    []TopicUsers `gorm:"foreignKey:TopicID" json:"users,omitempty"`

	audit.Auditable
}

func (Topic) TableName() string { return "topics" }

func NewTopic(title string, owner *user.User, s *Survey, members ...*user.User) *Topic {
	t := &Topic{Title: title, Owner: owner, Survey: s}
	if owner != nil {
		t.OwnerID = owner.ID
	}
	if s != nil {
		t.SurveyID = s.ID
	}
	for _, m := range members {
		t.AddUser(m)
	}
	return t
}

func (t *Topic) AddUser(u *user.User) {
	if t == nil || u == nil {
		return
	}
	t.Users = append(t.Users, TopicUsers{TopicID: t.ID, UserID: u.ID, User: u})
}

func (t *Topic) SurveyRef() int64 {
	if t == nil {
		return 0
	}
	if t.Survey != nil && t.Survey.ID != 0 {
		return t.Survey.ID
	}
	return t.SurveyID
}

func (t *Topic) OwnerRef() int64 {
	if t == nil {
		return 0
	}
	if t.Owner != nil && t.Owner.ID != 0 {
		return t.Owner.ID
	}
	return t.OwnerID
}

// OwnedBy reports whether userID is the topic owner.
func (t *Topic) OwnedBy(userID int64) bool {
	return t != nil && userID != 0 && t.OwnerRef() == userID
}
