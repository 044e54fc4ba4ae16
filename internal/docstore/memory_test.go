package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMemoryStoreCreateList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Create(ctx, "goal", bson.M{"designer_id": "d1", "title": "ship onboarding"})
	require.NoError(t, err)
	require.Len(t, id, 24) // hex ObjectID

	docs, err := s.List(ctx, "goal", bson.M{}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, id, docs[0]["_id"])
	require.Equal(t, "ship onboarding", docs[0]["title"])
}

func TestMemoryStoreEqualityFilter(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Create(ctx, "goal", bson.M{"designer_id": "d1", "title": "a"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "goal", bson.M{"designer_id": "d2", "title": "b"})
	require.NoError(t, err)

	docs, err := s.List(ctx, "goal", bson.M{"designer_id": "d1"}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "a", docs[0]["title"])

	// no match is an empty slice, not an error
	docs, err = s.List(ctx, "goal", bson.M{"designer_id": "nobody"}, 10)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestMemoryStoreMembershipFilter(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Create(ctx, "trainingresource", bson.M{"title": "figma 101", "tags": []string{"craft_quality", "tooling"}})
	require.NoError(t, err)
	_, err = s.Create(ctx, "trainingresource", bson.M{"title": "strategy talks", "tags": []string{"product_strategy"}})
	require.NoError(t, err)

	docs, err := s.List(ctx, "trainingresource", bson.M{"tags": bson.M{"$in": []string{"tooling"}}}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "figma 101", docs[0]["title"])

	// $in also matches scalar fields, like Mongo does
	_, err = s.Create(ctx, "project", bson.M{"name": "p", "manager_id": "m1"})
	require.NoError(t, err)
	docs, err = s.List(ctx, "project", bson.M{"manager_id": bson.M{"$in": []string{"m1"}}}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
}

func TestMemoryStoreLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx, "notification", bson.M{"user_id": "u1", "kind": "goal_due"})
		require.NoError(t, err)
	}
	docs, err := s.List(ctx, "notification", bson.M{}, 3)
	require.NoError(t, err)
	require.Len(t, docs, 3)
}

func TestMemoryStoreCollections(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_, err := s.Create(ctx, "designer", bson.M{"name": "Ada"})
	require.NoError(t, err)
	_, err = s.Create(ctx, "guild", bson.M{"name": "DesignOps"})
	require.NoError(t, err)

	names, err := s.Collections(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"designer", "guild"}, names)
}
