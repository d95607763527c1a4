package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cityOps/internal/db"
	"cityOps/models"
)

func openWasteDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestPickupRepository_StatusFilterAndOrder(t *testing.T) {
	d := openWasteDB(t, "pickuprepo")
	repo := NewPickupRepository(d)
	ctx := context.Background()

	seed := []models.PickupRequest{
		{ID: "p1", CitizenName: "A", Address: "1 St", Type: models.PickupTypeRegular, Status: models.PickupStatusRequested, RequestedAt: "2024-01-01T10:00:00Z"},
		{ID: "p2", CitizenName: "B", Address: "2 St", Type: models.PickupTypeBulky, Status: models.PickupStatusCompleted, RequestedAt: "2024-01-01T09:00:00Z"},
		{ID: "p3", CitizenName: "C", Address: "3 St", Type: models.PickupTypeHazardous, Status: models.PickupStatusScheduled, RequestedAt: "2024-01-01T08:00:00Z"},
	}
	for i := range seed {
		if _, err := repo.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("create %s: %v", seed[i].ID, err)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "p1" || all[2].ID != "p3" {
		t.Fatalf("expected insertion order, got %+v", all)
	}

	pending, err := repo.ListByStatuses(ctx, models.PickupStatusRequested, models.PickupStatusScheduled)
	if err != nil || len(pending) != 2 {
		t.Fatalf("filter: %v len=%d", err, len(pending))
	}

	stamp := "2024-01-02T00:00:00Z"
	if err := repo.UpdateStatus(ctx, "p1", models.PickupStatusCompleted, &stamp); err != nil {
		t.Fatalf("update: %v", err)
	}
	// nil completedAt keeps the stored stamp.
	if err := repo.UpdateStatus(ctx, "p1", models.PickupStatusRequested, nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := repo.GetByID(ctx, "p1")
	if got.Status != models.PickupStatusRequested || got.CompletedAt == nil || *got.CompletedAt != stamp {
		t.Fatalf("unexpected pickup after updates: %+v", got)
	}

	if err := repo.UpdateStatus(ctx, "nope", models.PickupStatusCompleted, nil); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	if missing, err := repo.GetByID(ctx, "nope"); err != nil || missing != nil {
		t.Fatalf("expected (nil, nil), got %+v %v", missing, err)
	}
}

func TestTruckRepository_PositionAndTx(t *testing.T) {
	d := openWasteDB(t, "truckrepo")
	repo := NewTruckRepository(d)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.Truck{ID: "t1", PlateNumber: "WM-1", DriverName: "Dan", Status: models.TruckStatusEnRoute, X: 10, Y: 20, FuelLevel: 50}); err != nil {
		t.Fatalf("create: %v", err)
	}
	created, err := repo.Create(ctx, &models.Truck{ID: "t2", PlateNumber: "WM-2", DriverName: "Eve"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != models.TruckStatusIdle {
		t.Fatalf("expected default IDLE, got %s", created.Status)
	}

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := repo.WithTx(tx).UpdatePosition(ctx, "t1", 11, 21, 49.9); err != nil {
		_ = tx.Rollback()
		t.Fatalf("update position: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	got, err := repo.GetByID(ctx, "t1")
	if err != nil || got == nil {
		t.Fatalf("get: %v", err)
	}
	if got.X != 11 || got.Y != 21 || got.FuelLevel != 49.9 {
		t.Fatalf("position not persisted: %+v", got)
	}

	if err := repo.UpdateStatus(ctx, "t2", models.TruckStatusMaintenance); err != nil {
		t.Fatalf("update status: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 || list[1].Status != models.TruckStatusMaintenance {
		t.Fatalf("list: %v %+v", err, list)
	}
}

func TestRouteAndBinRepositories(t *testing.T) {
	d := openWasteDB(t, "routebinrepo")
	routes := NewRouteRepository(d)
	bins := NewBinRepository(d)
	ctx := context.Background()

	if _, err := routes.Create(ctx, &models.Route{ID: "r1", TruckID: "t-unknown", Name: "North", Stops: 12, Progress: 40}); err != nil {
		t.Fatalf("create route: %v", err)
	}
	stamp := "2024-03-01T00:00:00Z"
	if err := routes.UpdateStatus(ctx, "r1", models.RouteStatusCompleted, &stamp); err != nil {
		t.Fatalf("update route: %v", err)
	}
	r, _ := routes.GetByID(ctx, "r1")
	if r.Status != models.RouteStatusCompleted || r.CompletedAt == nil {
		t.Fatalf("unexpected route: %+v", r)
	}

	if _, err := bins.Create(ctx, &models.Bin{ID: "b1", LocationName: "Park", FillLevel: 85, BatteryLevel: 90, LastServiced: "2024-01-01"}); err != nil {
		t.Fatalf("create bin: %v", err)
	}
	list, err := bins.List(ctx)
	if err != nil || len(list) != 1 || list[0].Category != models.BinCategoryGeneral {
		t.Fatalf("bins: %v %+v", err, list)
	}
}
