package survey

import "github.com/yungbote/apollo-backend/internal/domain/audit"

type Context struct {
	ID       int64   `gorm:"primaryKey;autoIncrement;column:id" json:"contextid"`
	Name     string  `gorm:"not null;column:name" json:"name" validate:"required"`
	SurveyID int64   `gorm:"not null;index;column:survey_id" json:"-"`
	Survey   *Survey `gorm:"foreignKey:SurveyID" json:"survey,omitempty"`

	audit.Auditable
}

func (Context) TableName() string { return "contexts" }

func NewContext(name string, s *Survey) *Context {
	c := &Context{Name: name, Survey: s}
	if s != nil {
		c.SurveyID = s.ID
	}
	return c
}

func (c *Context) SurveyRef() int64 {
	if c == nil {
		return 0
	}
	if c.Survey != nil && c.Survey.ID != 0 {
		return c.Survey.ID
	}
	return c.SurveyID
}
