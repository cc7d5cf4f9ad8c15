package survey

import (
	"context"
	"testing"

	"github.com/yungbote/apollo-backend/internal/data/repos/testutil"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

func TestTopicRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewTopicRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	admin := testutil.SeedUser(t, ctx, tx, "admin")
	cinnamon := testutil.SeedUser(t, ctx, tx, "cinnamon")
	s1 := testutil.SeedSurvey(t, ctx, tx)
	s2 := testutil.SeedSurvey(t, ctx, tx)

	created, err := repo.Create(dbc, []*types.Topic{
		types.NewTopic("Topic 1", admin, s1),
		types.NewTopic("Topic 2", cinnamon, s1),
		types.NewTopic("Topic 3", cinnamon, s2),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	anchor, err := repo.GetAnchorBySurveyID(dbc, s1.ID)
	if err != nil {
		t.Fatalf("GetAnchorBySurveyID: %v", err)
	}
	if anchor == nil || anchor.ID != created[0].ID {
		t.Fatalf("GetAnchorBySurveyID: expected lowest-id topic %d, got %+v", created[0].ID, anchor)
	}
	if anchor.Owner == nil || anchor.Owner.ID != admin.ID {
		t.Fatalf("GetAnchorBySurveyID: owner not preloaded: %+v", anchor.Owner)
	}

	noAnchor, err := repo.GetAnchorBySurveyID(dbc, s2.ID+10)
	if err != nil || noAnchor != nil {
		t.Fatalf("GetAnchorBySurveyID(no topics): got %+v, %v", noAnchor, err)
	}

	owned, err := repo.ListByOwnerID(dbc, cinnamon.ID)
	if err != nil {
		t.Fatalf("ListByOwnerID: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("ListByOwnerID: expected 2 topics, got %d", len(owned))
	}

	if n, err := repo.CountBySurveyID(dbc, s1.ID); err != nil || n != 2 {
		t.Fatalf("CountBySurveyID: got %d, %v", n, err)
	}
	if n, err := repo.CountByOwnerID(dbc, admin.ID); err != nil || n != 1 {
		t.Fatalf("CountByOwnerID: got %d, %v", n, err)
	}

	members := NewTopicUsersRepo(db, testutil.Logger(t))
	if err := members.Link(dbc, created[0].ID, []int64{cinnamon.ID, cinnamon.ID}); err != nil {
		t.Fatalf("Link: %v", err)
	}
	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Survey == nil || got.Owner == nil {
		t.Fatalf("GetByID: graph not loaded: %+v", got)
	}
	if len(got.Users) != 1 || got.Users[0].User == nil || got.Users[0].User.Username != "cinnamon" {
		t.Fatalf("GetByID: expected cinnamon as member, got %+v", got.Users)
	}

	got.Title = "Renamed"
	got.SurveyID = s2.ID
	got.Survey = nil
	if err := repo.Update(dbc, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if n, err := repo.CountBySurveyID(dbc, s2.ID); err != nil || n != 2 {
		t.Fatalf("Update: expected topic moved to s2, count=%d err=%v", n, err)
	}

	if err := members.DeleteByTopicID(dbc, created[0].ID); err != nil {
		t.Fatalf("DeleteByTopicID: %v", err)
	}
	if err := repo.DeleteByID(dbc, created[0].ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if n := testutil.Count(t, tx, &types.TopicUsers{}); n != 0 {
		t.Fatalf("expected no memberships left, got %d", n)
	}
	if n := testutil.Count(t, tx, &types.Topic{}); n != 2 {
		t.Fatalf("expected 2 topics left, got %d", n)
	}
}

func TestTopicUsersRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewTopicUsersRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	owner := testutil.SeedUser(t, ctx, tx, "admin")
	a := testutil.SeedUser(t, ctx, tx, "puttat")
	b := testutil.SeedUser(t, ctx, tx, "misskitty")
	s := testutil.SeedSurvey(t, ctx, tx)
	topic := testutil.SeedTopic(t, ctx, tx, "Topic 1", owner, s)

	if err := repo.Link(dbc, topic.ID, []int64{a.ID, b.ID}); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := repo.Link(dbc, topic.ID, []int64{a.ID}); err != nil {
		t.Fatalf("Link(duplicate): %v", err)
	}
	rows, err := repo.ListByTopicID(dbc, topic.ID)
	if err != nil {
		t.Fatalf("ListByTopicID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListByTopicID: expected 2 members, got %d", len(rows))
	}

	if err := repo.Unlink(dbc, topic.ID, []int64{a.ID}); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if err := repo.DeleteByUserID(dbc, b.ID); err != nil {
		t.Fatalf("DeleteByUserID: %v", err)
	}
	if n := testutil.Count(t, tx, &types.TopicUsers{}); n != 0 {
		t.Fatalf("expected 0 members, got %d", n)
	}
}
