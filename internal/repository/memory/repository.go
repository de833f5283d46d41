// Package memoryrepository keeps documents in process memory. Records are
// stored as BSON so reads behave like the Mongo backend.
package memoryrepository

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hedgeapi/internal/repository"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
	now         func() time.Time
}

func New() *Store {
	return &Store{collections: map[string][]bson.Raw{}, now: time.Now}
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", repository.Wrap("insert", collection, err, true)
	}
	item, err := repository.ToDocument(doc, s.now())
	if err != nil {
		return "", &repository.StorageError{Op: "encode", Collection: collection, Err: err}
	}
	id := primitive.NewObjectID()
	item["_id"] = id
	raw, err := bson.Marshal(item)
	if err != nil {
		return "", &repository.StorageError{Op: "encode", Collection: collection, Err: err}
	}
	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], raw)
	s.mu.Unlock()
	return id.Hex(), nil
}

func (s *Store) Find(ctx context.Context, collection string, filter repository.Filter, limit int64, out any) error {
	if err := ctx.Err(); err != nil {
		return repository.Wrap("find", collection, err, true)
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return &repository.StorageError{Op: "decode", Collection: collection, Err: errors.New("out must be a pointer to a slice")}
	}
	slice := rv.Elem()
	elemType := slice.Type().Elem()
	result := reflect.MakeSlice(slice.Type(), 0, 0)

	s.mu.RLock()
	docs := s.collections[collection]
	s.mu.RUnlock()

	for _, raw := range docs {
		if limit > 0 && int64(result.Len()) >= limit {
			break
		}
		ok, err := matches(raw, filter)
		if err != nil {
			return &repository.StorageError{Op: "find", Collection: collection, Err: err}
		}
		if !ok {
			continue
		}
		elem := reflect.New(elemType)
		dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(raw))
		if err != nil {
			return &repository.StorageError{Op: "decode", Collection: collection, Err: err}
		}
		dec.DefaultDocumentM()
		if err := dec.Decode(elem.Interface()); err != nil {
			return &repository.StorageError{Op: "decode", Collection: collection, Err: err}
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Set(result)
	return nil
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.Wrap("list_collections", "", err, true)
	}
	s.mu.RLock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return repository.Wrap("ping", "", ctx.Err(), true)
}

// Len reports how many records a collection holds.
func (s *Store) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func matches(raw bson.Raw, filter repository.Filter) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return false, err
	}
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false, nil
		}
	}
	return true, nil
}
