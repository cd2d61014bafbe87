package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/rosterpick/internal/catalog"
	"github.com/jask/rosterpick/internal/database/repository"
)

// SeedCatalog stores entities when the catalog table is empty.
// It is idempotent and safe to run on every startup.
func SeedCatalog(ctx context.Context, db *sql.DB, entities []catalog.Entity) (bool, error) {
	repo := repository.NewCharacterRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := repo.Upsert(ctx, entities...); err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	return true, nil
}

// LoadCatalog reads every stored character in catalog order.
func LoadCatalog(ctx context.Context, db *sql.DB) ([]catalog.Entity, error) {
	return repository.NewCharacterRepo(db).List(ctx)
}
