package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/time-tracker/api/internal/pkg/apperr"
	"gorm.io/gorm"
)

// Shared single-table helpers. entity is the display name used in not-found messages.

func create[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return foreignKey(db.WithContext(ctx).Create(row).Error)
}

func list[T any](ctx context.Context, db *gorm.DB) ([]*T, error) {
	rows := []*T{}
	return rows, db.WithContext(ctx).Find(&rows).Error
}

func get[T any](ctx context.Context, db *gorm.DB, entity string, id int64) (*T, error) {
	var row T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(entity, id)
		}
		return nil, err
	}
	return &row, nil
}

// update applies changes (column -> value) to row id and returns the fresh row.
// An empty change set only checks that the row exists.
func update[T any](ctx context.Context, db *gorm.DB, entity string, id int64, changes map[string]any) (*T, error) {
	var out *T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := get[T](ctx, tx, entity, id); err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(new(T)).Where("id = ?", id).Updates(changes).Error; err != nil {
				return fmt.Errorf("update %s: %w", entity, foreignKey(err))
			}
		}
		row, err := get[T](ctx, tx, entity, id)
		if err != nil {
			return err
		}
		out = row
		return nil
	})
	return out, err
}

// remove physically deletes row id; dependents go with it through ON DELETE CASCADE.
func remove[T any](ctx context.Context, db *gorm.DB, entity string, id int64) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(entity, id)
	}
	return nil
}

// foreignKey turns a dangling parent reference into a validation failure.
// Only connections opened with TranslateError report gorm.ErrForeignKeyViolated.
func foreignKey(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperr.Validation("referenced parent does not exist", err)
	}
	return err
}
