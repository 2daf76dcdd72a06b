package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boardkit/boardkit/pkg/board"
)

// MongoConfig holds connection settings for a MongoDB-backed store.
type MongoConfig struct {
	URI        string
	Database   string // Defaults to "boardkit"
	Collection string // Defaults to "boards"
}

// MongoStore persists boards in a MongoDB collection, one document per
// board keyed by _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// boardDoc is the stored document shape. Board fields serialize through
// their bson tags.
type boardDoc struct {
	ID    string      `bson:"_id"`
	Board board.Board `bson:"board"`
}

// NewMongoStore connects to MongoDB and returns a board store. The caller
// owns the connection and should Close it on shutdown.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.Database == "" {
		cfg.Database = "boardkit"
	}
	if cfg.Collection == "" {
		cfg.Collection = "boards"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Get(ctx context.Context, id string) (board.Board, error) {
	var doc boardDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return board.Board{}, ErrNotFound
		}
		return board.Board{}, fmt.Errorf("mongo get: %w", err)
	}
	return doc.Board, nil
}

func (s *MongoStore) Put(ctx context.Context, id string, b board.Board) error {
	if id == "" {
		return ErrInvalidID
	}
	doc := boardDoc{ID: id, Board: b}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, opts); err != nil {
		return fmt.Errorf("mongo put: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("mongo list: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo decode id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return ids, nil
}
