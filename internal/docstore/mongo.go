package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a mongo.Database. The mongo client is safe
// for concurrent use, so a single MongoStore is shared by all handlers.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Create(ctx context.Context, collection string, doc bson.M) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return idToString(res.InsertedID), nil
}

func (s *MongoStore) List(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		doc["_id"] = idToString(doc["_id"])
		out = append(out, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// idToString normalizes a store-assigned identifier to the string form clients
// see. ObjectIDs become 24-char hex; anything else falls back to fmt.
func idToString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
