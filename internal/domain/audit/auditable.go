package audit

import "time"

// Auditable is embedded by every persisted entity. The repo layer stamps it
// explicitly on insert and update.
type Auditable struct {
	CreatedBy        string    `gorm:"column:created_by" json:"createdBy,omitempty"`
	CreatedDate      time.Time `gorm:"column:created_date" json:"createdDate"`
	LastModifiedBy   string    `gorm:"column:last_modified_by" json:"lastModifiedBy,omitempty"`
	LastModifiedDate time.Time `gorm:"column:last_modified_date" json:"lastModifiedDate"`
}

func (a *Auditable) StampCreated(by string, at time.Time) {
	a.CreatedBy = by
	a.CreatedDate = at
	a.LastModifiedBy = by
	a.LastModifiedDate = at
}

func (a *Auditable) StampModified(by string, at time.Time) {
	a.LastModifiedBy = by
	a.LastModifiedDate = at
}

// Stamper is implemented by *Auditable and therefore by every entity embedding it.
type Stamper interface {
	StampCreated(by string, at time.Time)
	StampModified(by string, at time.Time)
}
