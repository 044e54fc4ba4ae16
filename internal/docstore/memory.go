package docstore

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a map-backed Store used by unit tests. It understands the two
// filter shapes the handlers produce: top-level equality and {"$in": [...]}
// membership (matched against scalar or array fields). Insertion order is
// preserved per collection.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (s *MemoryStore) Create(ctx context.Context, collection string, doc bson.M) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	id := primitive.NewObjectID().Hex()
	stored["_id"] = id
	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *MemoryStore) List(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []bson.M{}
	for _, doc := range s.collections[collection] {
		if int64(len(out)) >= limit {
			break
		}
		if matches(doc, filter) {
			cp := bson.M{}
			for k, v := range doc {
				cp[k] = v
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

func matches(doc, filter bson.M) bool {
	for field, cond := range filter {
		if in, ok := operandIn(cond); ok {
			if !memberOf(doc[field], in) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(doc[field], cond) {
			return false
		}
	}
	return true
}

func operandIn(cond interface{}) ([]interface{}, bool) {
	m, ok := cond.(bson.M)
	if !ok {
		return nil, false
	}
	raw, ok := m["$in"]
	if !ok {
		return nil, false
	}
	switch v := raw.(type) {
	case []interface{}:
		return v, true
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

// memberOf mirrors Mongo's $in: true when any candidate equals the field value
// itself, or equals any element when the field holds an array.
func memberOf(value interface{}, candidates []interface{}) bool {
	values := []interface{}{value}
	switch arr := value.(type) {
	case []interface{}:
		values = arr
	case []string:
		values = make([]interface{}, len(arr))
		for i, s := range arr {
			values[i] = s
		}
	case bson.A:
		values = arr
	}
	for _, v := range values {
		for _, c := range candidates {
			if reflect.DeepEqual(v, c) {
				return true
			}
		}
	}
	return false
}
