package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"promana-go/internal/db"
	"promana-go/internal/db/dbtest"
	"promana-go/internal/domain/integrity"
	"promana-go/pkg/logger"
)

func TestMigrateCreatesSchema(t *testing.T) {
	gormDB := dbtest.NewSQLite(t)

	tables := []string{"members", "projects", "phases", "tasks", "costs", "team_assignments", "hour_entries"}
	for _, table := range tables {
		if !gormDB.Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}

	// Running again is a no-op.
	if err := db.Migrate(context.Background(), gormDB, logger.NewNop()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestSchemaEnforcesConstraints(t *testing.T) {
	gormDB := dbtest.NewSQLite(t)

	insert := func(query string, args ...any) error {
		return db.Classify(gormDB.Exec(query, args...).Error)
	}

	if err := insert("INSERT INTO members (id, name) VALUES (?, ?)", "m1", "alice"); err != nil {
		t.Fatalf("insert member: %v", err)
	}
	if err := insert("INSERT INTO members (id, name) VALUES (?, ?)", "m2", "alice"); !errors.Is(err, integrity.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if err := insert("INSERT INTO members (id, name, hourly_cost) VALUES (?, ?, ?)", "m3", "bob", -1); !errors.Is(err, integrity.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation for negative cost, got %v", err)
	}
	if err := insert("INSERT INTO projects (id, name, status) VALUES (?, ?, ?)", "p1", "p1", "DONE"); !errors.Is(err, integrity.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation for status, got %v", err)
	}
	if err := insert("INSERT INTO projects (id, name, manager_id) VALUES (?, ?, ?)", "p2", "p2", "ghost"); !errors.Is(err, integrity.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation for dangling manager, got %v", err)
	}
}

func TestSchemaNullifiesOnDelete(t *testing.T) {
	gormDB := dbtest.NewSQLite(t)

	steps := []string{
		"INSERT INTO members (id, name) VALUES ('m1', 'alice')",
		"INSERT INTO projects (id, name, manager_id) VALUES ('p1', 'p1', 'm1')",
		"DELETE FROM members WHERE id = 'm1'",
	}
	for _, step := range steps {
		if err := gormDB.Exec(step).Error; err != nil {
			t.Fatalf("%s: %v", step, err)
		}
	}

	var managerID sql.NullString
	if err := gormDB.Raw("SELECT manager_id FROM projects WHERE id = 'p1'").Row().Scan(&managerID); err != nil {
		t.Fatalf("select: %v", err)
	}
	if managerID.Valid {
		t.Fatalf("expected manager_id to be null, got %q", managerID.String)
	}
}
