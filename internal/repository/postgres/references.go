// Package postgres holds helpers shared by the gorm repositories.
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"promana-go/internal/db"
	"promana-go/internal/domain/integrity"
)

// NullifyReferences sets every listed column pointing at id to NULL.
func NullifyReferences(ctx context.Context, gormDB *gorm.DB, refs []integrity.Reference, id string) error {
	for _, ref := range refs {
		err := gormDB.WithContext(ctx).
			Table(ref.Table).
			Where(ref.Column+" = ?", id).
			Update(ref.Column, nil).
			Error
		if err != nil {
			return fmt.Errorf("clear %s.%s: %w", ref.Table, ref.Column, db.Classify(err))
		}
	}
	return nil
}

// Write classifies constraint failures of a mutating statement.
func Write(tx *gorm.DB) error {
	return db.Classify(tx.Error)
}
