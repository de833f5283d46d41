package mongorepository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hedgeapi/internal/repository"
)

type Store struct {
	db  *mongo.Database
	now func() time.Time
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s == nil || s.db == nil {
		return "", repository.ErrStorageUnavailable
	}
	item, err := repository.ToDocument(doc, s.now())
	if err != nil {
		return "", &repository.StorageError{Op: "encode", Collection: collection, Err: err}
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, item)
	if err != nil {
		return "", repository.Wrap("insert", collection, err, unavailable(err))
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *Store) Find(ctx context.Context, collection string, filter repository.Filter, limit int64, out any) error {
	if s == nil || s.db == nil {
		return repository.ErrStorageUnavailable
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}
	cur, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return repository.Wrap("find", collection, err, unavailable(err))
	}
	if err := cur.All(ctx, out); err != nil {
		return repository.Wrap("decode", collection, err, unavailable(err))
	}
	return nil
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, repository.ErrStorageUnavailable
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, repository.Wrap("list_collections", "", err, unavailable(err))
	}
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return repository.ErrStorageUnavailable
	}
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return repository.Wrap("ping", "", err, true)
	}
	return nil
}

func unavailable(err error) bool {
	return mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err) ||
		errors.Is(err, mongo.ErrClientDisconnected)
}
