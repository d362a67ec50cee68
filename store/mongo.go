package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCollection[T any] struct {
	coll *mongo.Collection
}

func toBSON(f Filter) bson.D {
	d := bson.D{}
	for _, cl := range f {
		d = append(d, bson.E{Key: cl.Field, Value: cl.Value})
	}
	return d
}

// Migrate creates the unique index on the record identifier.
func (c *mongoCollection[T]) Migrate(ctx context.Context) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("index %s.id: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *mongoCollection[T]) Insert(ctx context.Context, rec *T) error {
	_, err := c.coll.InsertOne(ctx, rec)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

func (c *mongoCollection[T]) InsertIfAbsent(ctx context.Context, id string, rec *T) (bool, error) {
	res, err := c.coll.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$setOnInsert", Value: rec}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// a concurrent upsert won the race on the unique index
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("upsert %s %s: %w", c.coll.Name(), id, err)
	}
	return res.UpsertedCount > 0, nil
}

func (c *mongoCollection[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	var out T
	if err := c.coll.FindOne(ctx, toBSON(f)).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *mongoCollection[T]) FindMany(ctx context.Context, f Filter) ([]T, error) {
	cur, err := c.coll.Find(ctx, toBSON(f))
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mongoCollection[T]) Count(ctx context.Context, f Filter) (int64, error) {
	return c.coll.CountDocuments(ctx, toBSON(f))
}
