package survey

import "github.com/yungbote/apollo-backend/internal/domain/audit"

type Question struct {
	ID       int64   `gorm:"primaryKey;autoIncrement;column:id" json:"questionid"`
	Body     string  `gorm:"not null;column:body" json:"body" validate:"required"`
	IsLeader bool    `gorm:"not null;default:false;column:is_leader" json:"leader"`
	Type     string  `gorm:"not null;column:type" json:"type" validate:"required"`
	SurveyID int64   `gorm:"not null;index;column:survey_id" json:"-"`
	Survey   *Survey `gorm:"foreignKey:SurveyID" json:"survey,omitempty"`

	audit.Auditable
}

func (Question) TableName() string { return "questions" }

func NewQuestion(body string, isLeader bool, typ string, s *Survey) *Question {
	q := &Question{Body: body, IsLeader: isLeader, Type: typ, Survey: s}
	if s != nil {
		q.SurveyID = s.ID
	}
	return q
}

// SurveyRef returns the survey id the caller pointed at. The nested object wins
// over the scalar column because inbound JSON only ever fills the nested form.
func (q *Question) SurveyRef() int64 {
	if q == nil {
		return 0
	}
	if q.Survey != nil && q.Survey.ID != 0 {
		return q.Survey.ID
	}
	return q.SurveyID
}
