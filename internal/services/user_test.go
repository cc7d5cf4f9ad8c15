package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/apollo-backend/internal/data/repos/testutil"
	types "github.com/yungbote/apollo-backend/internal/domain"
	apperr "github.com/yungbote/apollo-backend/internal/pkg/errors"
	"github.com/yungbote/apollo-backend/internal/platform/ctxutil"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

func TestRoleService(t *testing.T) {
	s := newTestServices(t, nil)

	admin, err := s.roles.Save(s.dbc, &types.Role{Name: "  Admin "})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if admin.Name != "admin" {
		t.Fatalf("Save: expected normalized name, got %q", admin.Name)
	}
	if _, err := s.roles.Save(s.dbc, &types.Role{Name: "   "}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Save(blank): expected Validation, got %v", err)
	}

	renamed, err := s.roles.Update(s.dbc, admin.ID, "Data")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if renamed.ID != admin.ID || renamed.Name != "data" {
		t.Fatalf("Update: unexpected %+v", renamed)
	}
	if _, err := s.roles.Update(s.dbc, 999, "x"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Update(missing): expected NotFound, got %v", err)
	}

	byName, err := s.roles.FindByName(s.dbc, "DATA")
	if err != nil || byName.ID != admin.ID {
		t.Fatalf("FindByName: got %+v, %v", byName, err)
	}

	u := testutil.SeedUser(t, context.Background(), s.db, "admin", renamed)
	if err := s.roles.Delete(s.dbc, admin.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := testutil.Count(t, s.db, &types.UserRoles{}); n != 0 {
		t.Fatalf("Delete: user links must cascade, got %d", n)
	}
	if _, err := s.users.FindByID(s.dbc, u.ID); err != nil {
		t.Fatalf("Delete: user must survive: %v", err)
	}
	if _, err := s.roles.FindByID(s.dbc, admin.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("FindByID(deleted): expected NotFound, got %v", err)
	}
}

func TestUserService_Save(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()
	adminRole := testutil.SeedRole(t, ctx, s.db, "admin")
	userRole := testutil.SeedRole(t, ctx, s.db, "user")

	in := types.NewUser(" Cinnamon ", "Cinnamon@Example.local", []types.UserRoles{
		{Role: &types.Role{ID: userRole.ID}},
		{Role: &types.Role{Name: "admin"}},
	})
	in.Password = "password"

	saved, err := s.users.Save(s.dbc, in)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Username != "cinnamon" || saved.Email != "cinnamon@example.local" {
		t.Fatalf("Save: fields not normalized: %+v", saved)
	}
	if len(saved.Roles) != 2 {
		t.Fatalf("Save: expected 2 roles, got %v", saved.RoleNames())
	}
	if saved.Password == "password" {
		t.Fatalf("Save: password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("password")); err != nil {
		t.Fatalf("Save: password hash mismatch: %v", err)
	}

	// update without password keeps the hash, and without roles keeps the links
	updated, err := s.users.Save(s.dbc, &types.User{ID: saved.ID, Username: "cinnamon", Email: "cin@example.local"})
	if err != nil {
		t.Fatalf("Save(update): %v", err)
	}
	if updated.Password != saved.Password {
		t.Fatalf("Save(update): password hash must be kept")
	}
	if len(updated.Roles) != 2 {
		t.Fatalf("Save(update): roles must be kept, got %v", updated.RoleNames())
	}

	replaced, err := s.users.Save(s.dbc, &types.User{ID: saved.ID, Username: "cinnamon", Email: "cin@example.local",
		Roles: []types.UserRoles{{RoleID: adminRole.ID}}})
	if err != nil {
		t.Fatalf("Save(replace roles): %v", err)
	}
	if names := replaced.RoleNames(); len(names) != 1 || names[0] != "admin" {
		t.Fatalf("Save(replace roles): expected [admin], got %v", names)
	}
	if n := testutil.Count(t, s.db, &types.User{}); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}

func TestUserService_SaveRejects(t *testing.T) {
	s := newTestServices(t, nil)

	cases := []struct {
		name string
		in   *types.User
		kind error
	}{
		{"nil", nil, apperr.ErrValidation},
		{"no username", &types.User{Email: "a@example.local"}, apperr.ErrValidation},
		{"bad email", &types.User{Username: "a", Email: "not-an-email"}, apperr.ErrValidation},
		{"unknown role", &types.User{Username: "a", Email: "a@example.local", Roles: []types.UserRoles{{RoleID: 42}}}, apperr.ErrNotFound},
		{"unknown id", &types.User{ID: 42, Username: "a", Email: "a@example.local"}, apperr.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.users.Save(s.dbc, tc.in); !errors.Is(err, tc.kind) {
				t.Fatalf("Save: expected %v, got %v", tc.kind, err)
			}
		})
	}
	if n := testutil.Count(t, s.db, &types.User{}); n != 0 {
		t.Fatalf("expected no users, got %d", n)
	}
}

func TestUserService_DeleteAndRoles(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()
	role := testutil.SeedRole(t, ctx, s.db, "data")
	owner := testutil.SeedUser(t, ctx, s.db, "admin")
	member := testutil.SeedUser(t, ctx, s.db, "misskitty")
	survey := testutil.SeedSurvey(t, ctx, s.db)
	testutil.SeedTopic(t, ctx, s.db, "Topic 1", owner, survey, member)

	withRole, err := s.users.AddRole(s.dbc, member.ID, role.ID)
	if err != nil {
		t.Fatalf("AddRole: %v", err)
	}
	if names := withRole.RoleNames(); len(names) != 1 || names[0] != "data" {
		t.Fatalf("AddRole: expected [data], got %v", names)
	}
	if _, err := s.users.AddRole(s.dbc, member.ID, 999); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("AddRole(unknown role): expected NotFound, got %v", err)
	}
	without, err := s.users.RemoveRole(s.dbc, member.ID, role.ID)
	if err != nil {
		t.Fatalf("RemoveRole: %v", err)
	}
	if len(without.Roles) != 0 {
		t.Fatalf("RemoveRole: expected no roles, got %v", without.RoleNames())
	}

	if err := s.users.Delete(s.dbc, owner.ID); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("Delete(owner of topics): expected Validation, got %v", err)
	}
	if err := s.users.Delete(s.dbc, member.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := testutil.Count(t, s.db, &types.TopicUsers{}); n != 0 {
		t.Fatalf("Delete: memberships must cascade, got %d", n)
	}
	if _, err := s.users.FindByName(s.dbc, "misskitty"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("FindByName(deleted): expected NotFound, got %v", err)
	}
}

func TestUserService_GetMe(t *testing.T) {
	s := newTestServices(t, nil)
	u := testutil.SeedUser(t, context.Background(), s.db, "puttat")

	if _, err := s.users.GetMe(s.dbc); !errors.Is(err, apperr.ErrNotAuthorized) {
		t.Fatalf("GetMe(anonymous): expected NotAuthorized, got %v", err)
	}
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: u.ID, Username: u.Username})
	me, err := s.users.GetMe(dbctx.Context{Ctx: ctx})
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if me.ID != u.ID {
		t.Fatalf("GetMe: expected %d, got %d", u.ID, me.ID)
	}
}
