package user

import (
	"context"
	"testing"

	"github.com/yungbote/apollo-backend/internal/data/repos/testutil"
	types "github.com/yungbote/apollo-backend/internal/domain"
	"github.com/yungbote/apollo-backend/internal/platform/ctxutil"
	"github.com/yungbote/apollo-backend/internal/platform/dbctx"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := ctxutil.WithRequestData(context.Background(), &ctxutil.RequestData{UserID: 1, Username: "admin"})
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	role := testutil.SeedRole(t, ctx, tx, "user")

	created, err := repo.Create(dbc, []*types.User{
		{Username: "barnbarn", Email: "barnbarn@example.local", Password: "hash"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 || created[0].ID == 0 {
		t.Fatalf("Create: expected 1 user with id, got %+v", created)
	}
	if created[0].CreatedBy != "admin" || created[0].CreatedDate.IsZero() {
		t.Fatalf("Create: audit columns not stamped: %+v", created[0].Auditable)
	}

	if err := NewUserRolesRepo(db, testutil.Logger(t)).Link(dbc, created[0].ID, []int64{role.ID}); err != nil {
		t.Fatalf("Link: %v", err)
	}

	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Username != "barnbarn" {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}
	if names := got.RoleNames(); len(names) != 1 || names[0] != "user" {
		t.Fatalf("GetByID: expected role user, got %v", names)
	}

	byName, err := repo.GetByUsername(dbc, "  BarnBarn ")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if byName == nil || byName.ID != created[0].ID {
		t.Fatalf("GetByUsername: unexpected result: %+v", byName)
	}

	missing, err := repo.GetByID(dbc, created[0].ID+100)
	if err != nil {
		t.Fatalf("GetByID(missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID(missing): expected nil, got %+v", missing)
	}

	got.Email = "barn@example.local"
	got.CreatedBy = "someone-else"
	if err := repo.Update(dbc, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	reloaded, err := repo.GetByID(dbc, got.ID)
	if err != nil {
		t.Fatalf("GetByID(after update): %v", err)
	}
	if reloaded.Email != "barn@example.local" {
		t.Fatalf("Update: email not written: %+v", reloaded)
	}
	if reloaded.CreatedBy != "admin" {
		t.Fatalf("Update: created_by must be preserved, got %q", reloaded.CreatedBy)
	}

	ghost := &types.User{ID: got.ID + 100, Username: "ghost", Email: "ghost@example.local"}
	if err := repo.Update(dbc, ghost); err == nil {
		t.Fatalf("Update(missing): expected error")
	}

	all, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("List: expected 1 user, got %d", len(all))
	}

	if err := repo.DeleteByID(dbc, got.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if n := testutil.Count(t, tx, &types.User{}); n != 0 {
		t.Fatalf("DeleteByID: expected 0 users, got %d", n)
	}
}

func TestRoleRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRoleRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	created, err := repo.Create(dbc, []*types.Role{types.NewRole("admin"), types.NewRole("user"), types.NewRole("admin")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created[0].CreatedBy != "SYSTEM" {
		t.Fatalf("Create: expected SYSTEM actor, got %q", created[0].CreatedBy)
	}

	byName, err := repo.GetByName(dbc, "ADMIN")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if byName == nil || byName.ID != created[0].ID {
		t.Fatalf("GetByName: expected lowest id %d, got %+v", created[0].ID, byName)
	}

	none, err := repo.GetByName(dbc, "nope")
	if err != nil || none != nil {
		t.Fatalf("GetByName(missing): got %+v, %v", none, err)
	}

	created[1].Name = "data"
	if err := repo.Update(dbc, created[1]); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(dbc, created[1].ID)
	if err != nil || got == nil || got.Name != "data" {
		t.Fatalf("GetByID: got %+v, %v", got, err)
	}

	if err := repo.DeleteByID(dbc, created[2].ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	all, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List: expected 2 roles, got %d", len(all))
	}
}

func TestUserRolesRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewUserRolesRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	admin := testutil.SeedRole(t, ctx, tx, "admin")
	data := testutil.SeedRole(t, ctx, tx, "data")
	u := testutil.SeedUser(t, ctx, tx, "cinnamon")

	if err := repo.Link(dbc, u.ID, []int64{admin.ID, data.ID, admin.ID}); err != nil {
		t.Fatalf("Link: %v", err)
	}
	// linking an existing pair again is a no-op
	if err := repo.Link(dbc, u.ID, []int64{admin.ID}); err != nil {
		t.Fatalf("Link(again): %v", err)
	}
	links, err := repo.ListByUserID(dbc, u.ID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("ListByUserID: expected 2 links, got %d", len(links))
	}
	if links[0].Role == nil || links[0].Role.Name != "admin" {
		t.Fatalf("ListByUserID: role not preloaded: %+v", links[0])
	}

	if err := repo.Unlink(dbc, u.ID, []int64{admin.ID}); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if n := testutil.Count(t, tx, &types.UserRoles{}); n != 1 {
		t.Fatalf("Unlink: expected 1 link, got %d", n)
	}

	if err := repo.DeleteByRoleID(dbc, data.ID); err != nil {
		t.Fatalf("DeleteByRoleID: %v", err)
	}
	if n := testutil.Count(t, tx, &types.UserRoles{}); n != 0 {
		t.Fatalf("DeleteByRoleID: expected 0 links, got %d", n)
	}
}
