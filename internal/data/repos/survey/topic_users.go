package survey

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/apollo-backend/internal/data/repos/stamp"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
	"github.com/yungbote/apollo-backend/internal/platform/logger"
)

type TopicUsersRepo interface {
	// Link adds userIDs to the topic; existing memberships are left alone.
	Link(dbc dbctx.Context, topicID int64, userIDs []int64) error
	Unlink(dbc dbctx.Context, topicID int64, userIDs []int64) error
	ListByTopicID(dbc dbctx.Context, topicID int64) ([]*types.TopicUsers, error)
	DeleteByTopicID(dbc dbctx.Context, topicID int64) error
	DeleteByUserID(dbc dbctx.Context, userID int64) error
}

type topicUsersRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicUsersRepo(db *gorm.DB, baseLog *logger.Logger) TopicUsersRepo {
	return &topicUsersRepo{db: db, log: baseLog.With("repo", "TopicUsersRepo")}
}

func (r *topicUsersRepo) Link(dbc dbctx.Context, topicID int64, userIDs []int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if topicID <= 0 || len(userIDs) == 0 {
		return nil
	}
	rows := make([]*types.TopicUsers, 0, len(userIDs))
	seen := map[int64]bool{}
	for _, id := range userIDs {
		if id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, &types.TopicUsers{TopicID: topicID, UserID: id})
	}
	if len(rows) == 0 {
		return nil
	}
	stamp.Created(dbc.Ctx, rows...)
	return t.WithContext(dbc.Ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *topicUsersRepo) Unlink(dbc dbctx.Context, topicID int64, userIDs []int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if topicID <= 0 || len(userIDs) == 0 {
		return nil
	}
	return t.WithContext(dbc.Ctx).
		Where("topic_id = ? AND user_id IN ?", topicID, userIDs).
		Delete(&types.TopicUsers{}).Error
}

func (r *topicUsersRepo) ListByTopicID(dbc dbctx.Context, topicID int64) ([]*types.TopicUsers, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.TopicUsers{}
	if topicID <= 0 {
		return out, nil
	}
	if err := t.WithContext(dbc.Ctx).
		Preload("User").
		Where("topic_id = ?", topicID).
		Order("user_id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *topicUsersRepo) DeleteByTopicID(dbc dbctx.Context, topicID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Where("topic_id = ?", topicID).Delete(&types.TopicUsers{}).Error
}

func (r *topicUsersRepo) DeleteByUserID(dbc dbctx.Context, userID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Where("user_id = ?", userID).Delete(&types.TopicUsers{}).Error
}
