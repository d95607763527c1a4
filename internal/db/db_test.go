package db

import (
	"testing"
)

func TestOpen_AppliesAllMigrations(t *testing.T) {
	d, err := Open("file:dbmigrate?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	v, err := Version(d)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 2 {
		t.Fatalf("expected version 2, got %d", v)
	}
	for _, table := range []string{"pickups", "trucks", "bins", "routes", "users", "properties", "maintenance_requests", "payments"} {
		var name string
		if err := d.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table).Scan(&name); err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestRollbackLast_DropsPortalTables(t *testing.T) {
	d, err := Open("file:dbrollback?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := RollbackLast(d); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	v, _ := Version(d)
	if v != 1 {
		t.Fatalf("expected version 1 after rollback, got %d", v)
	}
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='payments'`).Scan(&n); err != nil {
		t.Fatalf("query: %v", err)
	}
	if n != 0 {
		t.Fatalf("payments table should be gone")
	}
	// Waste tables survive.
	if err := d.QueryRow(`SELECT COUNT(*) FROM trucks`).Scan(&n); err != nil {
		t.Fatalf("trucks table missing: %v", err)
	}
}
