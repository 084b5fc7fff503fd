package repository

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"go-ricemill/internal/model"
)

// A dry-run session builds SQL without executing it, which lets us assert the
// row lock actually reaches the generated statement. GORM silently ignores
// unknown Set keys, so a locking helper that stops emitting FOR UPDATE would
// otherwise fail only under concurrent load.
func TestLockForUpdate_EmitsRowLock(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run session: %v", err)
	}

	var rice model.Rice
	stmt := lockForUpdate(db).
		Where("rice_type = ? AND rice_name = ?", "Basmati", "Hilltop Gold").
		Find(&rice).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("locked read generated %q, want it to contain FOR UPDATE", sql)
	}
}

func TestLockForUpdate_CounterRead(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run session: %v", err)
	}

	var counter model.Counter
	stmt := lockForUpdate(db).
		Where("name = ?", model.CounterInvoice).
		First(&counter).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("counter read generated %q, want it to contain FOR UPDATE", sql)
	}
}
