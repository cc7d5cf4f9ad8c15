package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/apollo-backend/internal/data/repos/testutil"
	types "github.com/yungbote/apollo-backend/internal/domain"
	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
)

func TestContextService(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()
	s1 := testutil.SeedSurvey(t, ctx, s.db)
	s2 := testutil.SeedSurvey(t, ctx, s.db)

	saved, err := s.contexts.Save(s.dbc, types.NewContext("Product Leadership", &types.Survey{ID: s1.ID}))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == 0 || saved.SurveyID != s1.ID {
		t.Fatalf("Save: unexpected %+v", saved)
	}

	if _, err := s.contexts.Save(s.dbc, &types.Context{Name: "Orphan", SurveyID: 404}); !errors.Is(err, apperr.ErrNotFound) || err.Error() != "Survey Id 404 Not Found" {
		t.Fatalf("Save(unknown survey): got %v", err)
	}
	if _, err := s.contexts.Save(s.dbc, &types.Context{SurveyID: s1.ID}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Save(no name): expected Validation, got %v", err)
	}

	moved, err := s.contexts.Save(s.dbc, &types.Context{ID: saved.ID, Name: "Delivery Management", SurveyID: s2.ID})
	if err != nil {
		t.Fatalf("Save(update): %v", err)
	}
	if moved.ID != saved.ID || moved.SurveyID != s2.ID {
		t.Fatalf("Save(update): unexpected %+v", moved)
	}

	bySurvey, err := s.contexts.FindAllBySurveyID(s.dbc, s1.ID)
	if err != nil {
		t.Fatalf("FindAllBySurveyID: %v", err)
	}
	if len(bySurvey) != 0 {
		t.Fatalf("FindAllBySurveyID(s1): expected none, got %d", len(bySurvey))
	}
	all, err := s.contexts.FindAll(s.dbc)
	if err != nil || len(all) != 1 {
		t.Fatalf("FindAll: got %d, %v", len(all), err)
	}

	if err := s.contexts.Delete(s.dbc, saved.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.contexts.FindByID(s.dbc, saved.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("FindByID(deleted): expected NotFound, got %v", err)
	}
	if err := s.contexts.Delete(s.dbc, saved.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Delete(missing): expected NotFound, got %v", err)
	}
}
