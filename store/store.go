// Package store is the storage layer: one typed Collection per resource kind,
// backed either by MongoDB or by a gorm dialect (sqlite, postgres).
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by FindOne when no record matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned by Insert when the identifier is taken.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Clause is a single field equality condition.
type Clause struct {
	Field string
	Value any
}

// Filter is a conjunction of equality clauses. The zero value matches everything.
type Filter []Clause

// Eq starts a filter with one clause.
func Eq(field string, value any) Filter {
	return Filter{{Field: field, Value: value}}
}

// And returns a copy of f with one more clause.
func (f Filter) And(field string, value any) Filter {
	out := make(Filter, len(f), len(f)+1)
	copy(out, f)
	return append(out, Clause{Field: field, Value: value})
}

// AndIf is And when value is non-empty, otherwise f unchanged.
func (f Filter) AndIf(field, value string) Filter {
	if value == "" {
		return f
	}
	return f.And(field, value)
}

// Collection is the accessor for one resource kind. FindMany never pages,
// sorts or projects: it materializes the full matching set.
type Collection[T any] interface {
	Migrate(ctx context.Context) error
	Insert(ctx context.Context, rec *T) error
	// InsertIfAbsent inserts rec unless a record with id exists, atomically.
	InsertIfAbsent(ctx context.Context, id string, rec *T) (bool, error)
	FindOne(ctx context.Context, f Filter) (*T, error)
	FindMany(ctx context.Context, f Filter) ([]T, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

// NewCollection returns the collection called name on whichever backend db uses.
func NewCollection[T any](db *DB, name string) Collection[T] {
	if db.mongo != nil {
		return &mongoCollection[T]{coll: db.mongo.Collection(name)}
	}
	return &gormCollection[T]{db: db.sql, table: name}
}
