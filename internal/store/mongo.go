package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roombooking/internal/domain"
)

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database)}
}

func (s *MongoStore) Find(ctx context.Context, collection string, q Query) ([]Document, error) {
	opts := options.Find()
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, mongoFilter(q), opts)
	if err != nil {
		return nil, wrap("find", collection, err)
	}

	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return nil, wrap("find", collection, err)
	}

	out := make([]Document, 0, len(rows))
	for _, m := range rows {
		out = append(out, Document(m))
	}
	return out, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, q Query) (Document, error) {
	var m bson.M
	err := s.db.Collection(collection).FindOne(ctx, mongoFilter(q)).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, wrap("findOne", collection, err)
	}
	return Document(m), nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, rec Record) (domain.ID, error) {
	if _, err := s.db.Collection(collection).InsertOne(ctx, rec); err != nil {
		return domain.ID{}, wrap("insertOne", collection, err)
	}
	return rec.DocumentID(), nil
}

// Count uses collection metadata, so the result is an estimate.
func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, wrap("count", collection, err)
	}
	return n, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func mongoFilter(q Query) bson.M {
	filter := bson.M{}
	if len(q.IDs) > 0 {
		filter["_id"] = bson.M{"$in": q.IDs}
	}
	for k, v := range q.Where {
		filter[k] = v
	}
	return filter
}
