package survey

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/apollo-backend/internal/data/repos/stamp"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type TopicRepo interface {
	Create(dbc dbctx.Context, topics []*types.Topic) ([]*types.Topic, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Topic, error)
	List(dbc dbctx.Context) ([]*types.Topic, error)
	ListByOwnerID(dbc dbctx.Context, ownerID int64) ([]*types.Topic, error)
	// GetAnchorBySurveyID returns the lowest-id topic pointing at surveyID, or nil.
	GetAnchorBySurveyID(dbc dbctx.Context, surveyID int64) (*types.Topic, error)
	CountBySurveyID(dbc dbctx.Context, surveyID int64) (int64, error)
	CountByOwnerID(dbc dbctx.Context, ownerID int64) (int64, error)
	Update(dbc dbctx.Context, topic *types.Topic) error
	DeleteByID(dbc dbctx.Context, id int64) error
}

type topicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRepo(db *gorm.DB, baseLog *logger.Logger) TopicRepo {
	repoLog := baseLog.With("repo", "TopicRepo")
	return &topicRepo{db: db, log: repoLog}
}

func withGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Owner").
		Preload("Survey").
		Preload("Users", func(db *gorm.DB) *gorm.DB { return db.Order("user_id ASC") }).
		Preload("Users.User")
}

func (r *topicRepo) Create(dbc dbctx.Context, topics []*types.Topic) ([]*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if len(topics) == 0 {
		return []*types.Topic{}, nil
	}
	stamp.Created(dbc.Ctx, topics...)
	if err := t.WithContext(dbc.Ctx).Omit(clause.Associations).Create(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepo) GetByID(dbc dbctx.Context, id int64) (*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil, nil
	}
	var rows []*types.Topic
	if err := withGraph(t.WithContext(dbc.Ctx)).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *topicRepo) List(dbc dbctx.Context) ([]*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Topic
	if err := withGraph(t.WithContext(dbc.Ctx)).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicRepo) ListByOwnerID(dbc dbctx.Context, ownerID int64) ([]*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Topic{}
	if ownerID <= 0 {
		return out, nil
	}
	if err := withGraph(t.WithContext(dbc.Ctx)).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicRepo) GetAnchorBySurveyID(dbc dbctx.Context, surveyID int64) (*types.Topic, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if surveyID <= 0 {
		return nil, nil
	}
	var rows []*types.Topic
	if err := t.WithContext(dbc.Ctx).
		Preload("Owner").
		Where("survey_id = ?", surveyID).
		Order("id ASC").
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *topicRepo) CountBySurveyID(dbc dbctx.Context, surveyID int64) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var n int64
	err := t.WithContext(dbc.Ctx).Model(&types.Topic{}).Where("survey_id = ?", surveyID).Count(&n).Error
	return n, err
}

func (r *topicRepo) CountByOwnerID(dbc dbctx.Context, ownerID int64) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var n int64
	err := t.WithContext(dbc.Ctx).Model(&types.Topic{}).Where("owner_id = ?", ownerID).Count(&n).Error
	return n, err
}

// Update overwrites title, owner and survey. Membership rows are managed by TopicUsersRepo.
func (r *topicRepo) Update(dbc dbctx.Context, topic *types.Topic) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if topic == nil || topic.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	stamp.Modified(dbc.Ctx, topic)
	res := t.WithContext(dbc.Ctx).
		Model(topic).
		Select("*").
		Omit(append([]string{clause.Associations}, stamp.UpdateOmits...)...).
		Updates(topic)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *topicRepo) DeleteByID(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if id <= 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).Where("id = ?", id).Delete(&types.Topic{}).Error
}
