package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/apollo-backend/internal/domain"
)

func SeedRole(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Role {
	tb.Helper()
	r := types.NewRole(name)
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed role: %v", err)
	}
	return r
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string, roles ...*types.Role) *types.User {
	tb.Helper()
	u := &types.User{Username: username, Email: username + "@example.local"}
	if err := tx.WithContext(ctx).Omit("Roles").Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	for _, r := range roles {
		ur := &types.UserRoles{UserID: u.ID, RoleID: r.ID}
		if err := tx.WithContext(ctx).Omit("User", "Role").Create(ur).Error; err != nil {
			tb.Fatalf("seed user role: %v", err)
		}
		ur.Role = r
		u.Roles = append(u.Roles, *ur)
	}
	return u
}

func SeedSurvey(tb testing.TB, ctx context.Context, tx *gorm.DB) *types.Survey {
	tb.Helper()
	s := &types.Survey{}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed survey: %v", err)
	}
	return s
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, s *types.Survey, body string) *types.Question {
	tb.Helper()
	q := &types.Question{Body: body, IsLeader: true, Type: "text", SurveyID: s.ID}
	if err := tx.WithContext(ctx).Omit("Survey").Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedContext(tb testing.TB, ctx context.Context, tx *gorm.DB, s *types.Survey, name string) *types.Context {
	tb.Helper()
	c := &types.Context{Name: name, SurveyID: s.ID}
	if err := tx.WithContext(ctx).Omit("Survey").Create(c).Error; err != nil {
		tb.Fatalf("seed context: %v", err)
	}
	return c
}

func SeedTopic(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, owner *types.User, s *types.Survey, members ...*types.User) *types.Topic {
	tb.Helper()
	t := &types.Topic{Title: title, OwnerID: owner.ID, SurveyID: s.ID}
	if err := tx.WithContext(ctx).Omit("Owner", "Survey", "Users").Create(t).Error; err != nil {
		tb.Fatalf("seed topic: %v", err)
	}
	for _, m := range members {
		tu := &types.TopicUsers{TopicID: t.ID, UserID: m.ID}
		if err := tx.WithContext(ctx).Omit("User").Create(tu).Error; err != nil {
			tb.Fatalf("seed topic user: %v", err)
		}
		t.Users = append(t.Users, *tu)
	}
	return t
}
