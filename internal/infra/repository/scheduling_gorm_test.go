package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Sessão dry-run: monta o SQL sem tocar no banco.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=clinic dbname=clinic sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db
}

// Postgres rejeita FOR UPDATE combinado com função de agregação (0A000);
// a checagem de conflito precisa travar linhas reais, nunca um count.
func TestActiveAppointmentQueryLocksRowsWithoutAggregate(t *testing.T) {
	repo := NewSchedulingGormRepository(newDryRunDB(t), time.UTC)

	at := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	tx := repo.activeAppointmentsAt(context.Background(), uuid.New(), at).
		Pluck("id", &ids)
	if tx.Error != nil {
		t.Fatalf("unexpected error building query: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("expected row locking clause, got %q", sql)
	}
	if strings.Contains(strings.ToLower(sql), "count(") {
		t.Fatalf("aggregate combined with FOR UPDATE is invalid in postgres: %q", sql)
	}
	if !strings.Contains(sql, "status <> ") {
		t.Fatalf("conflict check must ignore cancelled appointments: %q", sql)
	}
}
