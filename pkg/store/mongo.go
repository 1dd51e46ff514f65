package store

import (
	"context"
	stderrors "errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/geom"
	"github.com/matzehuels/architectus/pkg/plan"
)

// DefaultCollection is the collection plans are stored in.
const DefaultCollection = "plans"

// MongoStore keeps plans in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	owned  bool
}

// planDoc is the stored document. BSON has no unsigned 64-bit type, so the
// seed is kept as the int64 with the same bits.
type planDoc struct {
	ID        string               `bson:"_id"`
	Seed      int64                `bson:"seed"`
	Component string               `bson:"component,omitempty"`
	Size      geom.Vector2Int      `bson:"size"`
	Floors    []plan.FloorSnapshot `bson:"floors"`
	CreatedAt time.Time            `bson:"created_at"`
}

func toDoc(s *plan.Snapshot) planDoc {
	return planDoc{
		ID:        s.ID,
		Seed:      int64(s.Seed),
		Component: s.Component,
		Size:      s.Size,
		Floors:    s.Floors,
		CreatedAt: s.CreatedAt,
	}
}

func (d planDoc) snapshot() *plan.Snapshot {
	return &plan.Snapshot{
		ID:        d.ID,
		Seed:      uint64(d.Seed),
		Component: d.Component,
		Size:      d.Size,
		Floors:    d.Floors,
		CreatedAt: d.CreatedAt,
	}
}

// NewMongoStore connects to uri and verifies the connection. The store owns
// the client and disconnects it on Close.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "ping mongodb")
	}
	s := NewMongoStoreFromClient(client, database, DefaultCollection)
	s.owned = true
	return s, nil
}

// NewMongoStoreFromClient wraps an existing client. Close leaves the client
// connected.
func NewMongoStoreFromClient(client *mongo.Client, database, collection string) *MongoStore {
	return &MongoStore{client: client, coll: client.Database(database).Collection(collection)}
}

func (m *MongoStore) Save(ctx context.Context, s *plan.Snapshot) (string, error) {
	if err := prepare(s); err != nil {
		return "", err
	}
	if _, err := m.coll.InsertOne(ctx, toDoc(s)); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "insert plan")
	}
	return s.ID, nil
}

func (m *MongoStore) Get(ctx context.Context, id string) (*plan.Snapshot, error) {
	var doc planDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "find plan %s", id)
	}
	return doc.snapshot(), nil
}

func (m *MongoStore) List(ctx context.Context, limit int) ([]*plan.Snapshot, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(listLimit(limit)))
	cur, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list plans")
	}
	var docs []planDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "decode plans")
	}
	out := make([]*plan.Snapshot, len(docs))
	for i, d := range docs {
		out[i] = d.snapshot()
	}
	return out, nil
}

func (m *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete plan %s", id)
	}
	return nil
}

// Close disconnects the client if the store created it.
func (m *MongoStore) Close() error {
	if !m.owned {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
