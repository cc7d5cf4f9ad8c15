package survey

import (
	"context"
	"testing"

	"github.com/yungbote/apollo-backend/internal/data/repos/testutil"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

func TestSurveyRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewSurveyRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	created, err := repo.Create(dbc, []*types.Survey{{}, {}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created[0].ID == 0 || created[1].ID == 0 || created[0].ID == created[1].ID {
		t.Fatalf("Create: expected distinct ids, got %d and %d", created[0].ID, created[1].ID)
	}

	testutil.SeedQuestion(t, ctx, tx, created[0], "Leader Question 1")
	testutil.SeedContext(t, ctx, tx, created[0], "Product Leadership")

	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || len(got.Questions) != 1 || len(got.Contexts) != 1 {
		t.Fatalf("GetByID: expected one question and one context, got %+v", got)
	}

	if err := repo.Touch(dbc, got); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	if err := repo.Touch(dbc, &types.Survey{ID: created[1].ID + 50}); err == nil {
		t.Fatalf("Touch(missing): expected error")
	}

	all, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List: expected 2 surveys, got %d", len(all))
	}

	if err := repo.DeleteByID(dbc, created[1].ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	missing, err := repo.GetByID(dbc, created[1].ID)
	if err != nil || missing != nil {
		t.Fatalf("GetByID(deleted): got %+v, %v", missing, err)
	}
}

func TestQuestionRepo_ListBySurveyID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewQuestionRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	s1 := testutil.SeedSurvey(t, ctx, tx)
	s2 := testutil.SeedSurvey(t, ctx, tx)

	rows, err := repo.Create(dbc, []*types.Question{
		types.NewQuestion("Leader Question 1", true, "text", s1),
		types.NewQuestion("Leader Question 2", true, "text", s1),
		types.NewQuestion("Leader Question 3", false, "text", s2),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := repo.ListBySurveyID(dbc, s1.ID)
	if err != nil {
		t.Fatalf("ListBySurveyID: %v", err)
	}
	if len(first) != 2 || first[0].ID != rows[0].ID || first[1].ID != rows[1].ID {
		t.Fatalf("ListBySurveyID(s1): unexpected result: %+v", first)
	}
	if first[0].Survey == nil || first[0].Survey.ID != s1.ID {
		t.Fatalf("ListBySurveyID(s1): survey not preloaded")
	}

	second, err := repo.ListBySurveyID(dbc, s2.ID)
	if err != nil {
		t.Fatalf("ListBySurveyID: %v", err)
	}
	if len(second) != 1 || second[0].Body != "Leader Question 3" || second[0].IsLeader {
		t.Fatalf("ListBySurveyID(s2): unexpected result: %+v", second)
	}

	none, err := repo.ListBySurveyID(dbc, s2.ID+10)
	if err != nil {
		t.Fatalf("ListBySurveyID(unknown): %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("ListBySurveyID(unknown): expected empty slice, got %+v", none)
	}

	rows[2].Body = "Rewritten"
	rows[2].Survey = nil
	rows[2].SurveyID = s1.ID
	if err := repo.Update(dbc, rows[2]); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(dbc, rows[2].ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got %+v, %v", got, err)
	}
	if got.Body != "Rewritten" || got.SurveyID != s1.ID {
		t.Fatalf("Update: row not overwritten: %+v", got)
	}

	if err := repo.DeleteBySurveyID(dbc, s1.ID); err != nil {
		t.Fatalf("DeleteBySurveyID: %v", err)
	}
	if n := testutil.Count(t, tx, &types.Question{}); n != 0 {
		t.Fatalf("DeleteBySurveyID: expected 0 questions, got %d", n)
	}
}

func TestContextRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewContextRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	s1 := testutil.SeedSurvey(t, ctx, tx)
	s2 := testutil.SeedSurvey(t, ctx, tx)

	rows, err := repo.Create(dbc, []*types.Context{
		types.NewContext("Product Leadership", s1),
		types.NewContext("Delivery Management", s2),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bySurvey, err := repo.ListBySurveyID(dbc, s2.ID)
	if err != nil {
		t.Fatalf("ListBySurveyID: %v", err)
	}
	if len(bySurvey) != 1 || bySurvey[0].ID != rows[1].ID {
		t.Fatalf("ListBySurveyID: unexpected result: %+v", bySurvey)
	}

	rows[0].Name = "Design Leadership"
	if err := repo.Update(dbc, rows[0]); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(dbc, rows[0].ID)
	if err != nil || got == nil || got.Name != "Design Leadership" {
		t.Fatalf("GetByID: got %+v, %v", got, err)
	}

	if err := repo.DeleteByID(dbc, rows[0].ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	all, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("List: expected 1 context, got %d", len(all))
	}
}
