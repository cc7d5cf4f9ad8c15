package survey

import "github.com/yungbote/apollo-backend/internal/domain/audit"

type Survey struct {
	ID        int64      `gorm:"primaryKey;autoIncrement;column:id" json:"surveyid"`
	Contexts  []Context  `gorm:"foreignKey:SurveyID" json:"contexts,omitempty"`
	Questions []Question `gorm:"foreignKey:SurveyID" json:"questions,omitempty"`
	Topics    []Topic    `gorm:"foreignKey:SurveyID" json:"topics,omitempty"`

	audit.Auditable
}

func (Survey) TableName() string { return "surveys" }

// SurveyQuestion is the inbound shape of one question in a survey request.
type SurveyQuestion struct {
	Body     string `json:"body" validate:"required"`
	IsLeader bool   `json:"isLeader"`
	Type     string `json:"type" validate:"required"`
}
