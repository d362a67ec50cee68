package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

type widget struct {
	ID     string   `json:"id" bson:"id" gorm:"primaryKey"`
	Kind   string   `json:"kind" bson:"kind"`
	Active bool     `json:"active" bson:"active"`
	Tags   []string `json:"tags" bson:"tags" gorm:"serializer:json;type:text"`
}

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "store.db"), Options{LogLevel: "silent"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func newWidgets(t *testing.T) Collection[widget] {
	t.Helper()
	coll := NewCollection[widget](openTestDB(t), "widgets")
	if err := coll.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return coll
}

func TestOpenSelectsSQLiteByDefault(t *testing.T) {
	db := openTestDB(t)
	if db.Backend() != BackendSQLite {
		t.Errorf("Expected backend %q, got %q", BackendSQLite, db.Backend())
	}
}

func TestInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	coll := newWidgets(t)

	in := &widget{ID: "w-1", Kind: "gear", Active: true, Tags: []string{"a", "b"}}
	if err := coll.Insert(ctx, in); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := coll.FindOne(ctx, Eq("id", "w-1"))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Kind != "gear" || !got.Active || len(got.Tags) != 2 || got.Tags[1] != "b" {
		t.Errorf("Unexpected record: %+v", got)
	}
}

func TestFindOneMissing(t *testing.T) {
	coll := newWidgets(t)
	_, err := coll.FindOne(context.Background(), Eq("id", "nope"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestInsertDuplicateKey(t *testing.T) {
	ctx := context.Background()
	coll := newWidgets(t)

	if err := coll.Insert(ctx, &widget{ID: "w-1"}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := coll.Insert(ctx, &widget{ID: "w-1", Kind: "other"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
	if err.Error() == ErrDuplicateKey.Error() {
		t.Error("Expected the driver error text to be kept")
	}
}

func TestFindManyAndCountWithFilters(t *testing.T) {
	ctx := context.Background()
	coll := newWidgets(t)

	for _, w := range []widget{
		{ID: "1", Kind: "gear", Active: true},
		{ID: "2", Kind: "gear", Active: false},
		{ID: "3", Kind: "bolt", Active: true},
	} {
		w := w
		if err := coll.Insert(ctx, &w); err != nil {
			t.Fatalf("insert %s: %v", w.ID, err)
		}
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"no filter", nil, 3},
		{"active", Eq("active", true), 2},
		{"active gear", Eq("active", true).And("kind", "gear"), 1},
		{"no match", Eq("kind", "spring"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coll.FindMany(ctx, tt.filter)
			if err != nil {
				t.Fatalf("find many: %v", err)
			}
			if got == nil {
				t.Fatal("Expected empty slice, got nil")
			}
			if len(got) != tt.want {
				t.Errorf("Expected %d records, got %d", tt.want, len(got))
			}

			n, err := coll.Count(ctx, tt.filter)
			if err != nil {
				t.Fatalf("count: %v", err)
			}
			if n != int64(tt.want) {
				t.Errorf("Expected count %d, got %d", tt.want, n)
			}
		})
	}
}

func TestInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	coll := newWidgets(t)

	inserted, err := coll.InsertIfAbsent(ctx, "w-1", &widget{ID: "w-1", Kind: "first"})
	if err != nil || !inserted {
		t.Fatalf("Expected first insert, got inserted=%v err=%v", inserted, err)
	}
	inserted, err = coll.InsertIfAbsent(ctx, "w-1", &widget{ID: "w-1", Kind: "second"})
	if err != nil {
		t.Fatalf("second insert: %v", err)
	}
	if inserted {
		t.Error("Expected second insert to be skipped")
	}

	got, err := coll.FindOne(ctx, Eq("id", "w-1"))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Kind != "first" {
		t.Errorf("Expected first record to survive, got kind %q", got.Kind)
	}
}

func TestFilterBuilders(t *testing.T) {
	base := Eq("active", true)
	a := base.And("kind", "gear")
	b := base.And("kind", "bolt")
	if len(base) != 1 {
		t.Errorf("And must not mutate the receiver, got %d clauses", len(base))
	}
	if a[1].Value != "gear" || b[1].Value != "bolt" {
		t.Errorf("Clauses leaked between branches: %v %v", a, b)
	}

	if got := base.AndIf("kind", ""); len(got) != 1 {
		t.Errorf("AndIf with empty value should be a no-op, got %v", got)
	}
	var empty Filter
	if got := empty.AndIf("kind", "gear"); len(got) != 1 || got[0].Field != "kind" {
		t.Errorf("Unexpected filter %v", got)
	}
}

func TestSQLitePath(t *testing.T) {
	tests := map[string]string{
		"sqlite://data.db":  "data.db",
		"sqlite://":         ":memory:",
		"/tmp/x.db":         "/tmp/x.db",
		"sqlite://:memory:": ":memory:",
	}
	for in, want := range tests {
		if got := sqlitePath(in); got != want {
			t.Errorf("sqlitePath(%q) = %q, want %q", in, got, want)
		}
	}
}
