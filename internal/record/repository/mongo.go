package repository

import (
	"context"

	"github.com/formdrop/formdrop/internal/database"
	"github.com/formdrop/formdrop/internal/record"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository over one MongoDB collection. When built
// from an unavailable handle every call returns database.ErrNotConnected.
type MongoRepo struct {
	col *mongo.Collection
	err error
}

func NewMongoRepo(h database.Handle, db, collection string) *MongoRepo {
	col, err := h.Collection(db, collection)
	return &MongoRepo{col: col, err: err}
}

// Available reports whether the repository has a live collection.
func (m *MongoRepo) Available() bool { return m.err == nil }

func (m *MongoRepo) Insert(ctx context.Context, r *record.Record) error {
	if m.err != nil {
		return m.err
	}
	_, err := m.col.InsertOne(ctx, r)
	return err
}

// FindAll returns every document with the internal _id projected away.
// Documents are decoded generically and never bound to record.Record.
func (m *MongoRepo) FindAll(ctx context.Context) ([]record.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]record.Document, len(docs))
	for i, d := range docs {
		out[i] = record.Document(d)
	}
	return out, nil
}
