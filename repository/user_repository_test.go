package repository

import (
	"context"
	"testing"

	"cityOps/internal/db"
	"cityOps/models"
)

func TestUserRepository_CRUDAndQueries(t *testing.T) {
	d, err := db.Open("file:userrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	repo := NewUserRepository(d)
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{ID: "u1", Name: "Alice", Email: " Alice@Example.com ", Role: models.RoleTenant})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalised: %+v", u)
	}

	g, err := repo.GetByID(ctx, "u1")
	if err != nil || g == nil || g.Name != "Alice" || g.Role != models.RoleTenant {
		t.Fatalf("get by id: %v %+v", err, g)
	}

	g2, err := repo.GetByEmail(ctx, "ALICE@example.com")
	if err != nil || g2 == nil || g2.ID != "u1" {
		t.Fatalf("get by email: %v %+v", err, g2)
	}

	if _, err := repo.Create(ctx, &models.User{ID: "u2", Name: "Dup", Email: "alice@example.com"}); err == nil {
		t.Fatalf("expected unique email violation")
	}

	list, err := repo.List(ctx, 10, 0)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}

	if err := repo.UpdateRole(ctx, "u1", models.RoleLandlord); err != nil {
		t.Fatalf("update role: %v", err)
	}
	g3, _ := repo.GetByID(ctx, "u1")
	if g3.Role != models.RoleLandlord {
		t.Fatalf("role not updated: %+v", g3)
	}
	if err := repo.UpdateRole(ctx, "missing", models.RoleAdmin); err == nil {
		t.Fatalf("expected error for unknown user")
	}

	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := repo.GetByID(ctx, "u1")
	if err != nil || gone != nil {
		t.Fatalf("expected user deleted, got: %+v err=%v", gone, err)
	}
}
