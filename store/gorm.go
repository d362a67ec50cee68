package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormCollection[T any] struct {
	db    *gorm.DB
	table string
}

func (c *gormCollection[T]) scoped(ctx context.Context, f Filter) *gorm.DB {
	tx := c.db.WithContext(ctx).Table(c.table)
	for _, cl := range f {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: cl.Field}, Value: cl.Value})
	}
	return tx
}

func (c *gormCollection[T]) Migrate(ctx context.Context) error {
	if err := c.db.WithContext(ctx).Table(c.table).AutoMigrate(new(T)); err != nil {
		return fmt.Errorf("migrate %s: %w", c.table, err)
	}
	return nil
}

func (c *gormCollection[T]) Insert(ctx context.Context, rec *T) error {
	err := c.db.WithContext(ctx).Table(c.table).Create(rec).Error
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

func (c *gormCollection[T]) InsertIfAbsent(ctx context.Context, id string, rec *T) (bool, error) {
	res := c.db.WithContext(ctx).Table(c.table).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rec)
	if res.Error != nil {
		return false, fmt.Errorf("insert %s %s: %w", c.table, id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (c *gormCollection[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	var out T
	if err := c.scoped(ctx, f).Take(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *gormCollection[T]) FindMany(ctx context.Context, f Filter) ([]T, error) {
	out := make([]T, 0)
	if err := c.scoped(ctx, f).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gormCollection[T]) Count(ctx context.Context, f Filter) (int64, error) {
	var n int64
	if err := c.scoped(ctx, f).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// isUniqueViolation also matches drivers that do not implement gorm's error translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
