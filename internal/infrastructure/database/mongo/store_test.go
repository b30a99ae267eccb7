package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("read existing document", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "session:s:cart"},
			{Key: "value", Value: `{"items":[],"total":0}`},
			{Key: "updated_at", Value: time.Now()},
		}))

		raw, err := NewStore(mt.Coll).Read(context.Background(), "session:s:cart")
		require.NoError(mt, err)
		assert.JSONEq(mt, `{"items":[],"total":0}`, string(raw))
	})

	mt.Run("read missing document", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewStore(mt.Coll).Read(context.Background(), "session:s:cart")
		assert.ErrorIs(mt, err, storage.ErrNotFound)
	})

	mt.Run("read failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized",
		}))

		_, err := NewStore(mt.Coll).Read(context.Background(), "session:s:cart")
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, storage.ErrNotFound)
	})

	mt.Run("write upserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "session:s:orders"}}}},
		))

		err := NewStore(mt.Coll).Write(context.Background(), "session:s:orders", []byte(`[]`))
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "update", started.CommandName)
	})

	mt.Run("write failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 121, Message: "document failed validation",
		}))

		err := NewStore(mt.Coll).Write(context.Background(), "session:s:orders", []byte(`[]`))
		assert.ErrorContains(mt, err, "document failed validation")
	})
}
