package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
)

// MongoStore is the durable backend. Documents are keyed by a string _id so
// ids stay interchangeable with the in-memory backend.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// EnsureIndexes creates the unique indexes backing the email and plate
// uniqueness rules. The repository still checks before writing; the indexes
// close the check/write race on this backend.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return backendErr("create email index", err)
	}
	_, err = s.db.Collection(CollectionVehicles).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "plate", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return backendErr("create plate index", err)
	}
	return nil
}

func backendErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrBackendUnavailable, op, err)
}

func (s *MongoStore) seedIfEmpty(ctx context.Context, collection string) error {
	seeds := seedDocuments(collection)
	if len(seeds) == 0 {
		return nil
	}
	coll := s.db.Collection(collection)
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return backendErr("count "+collection, err)
	}
	if n > 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, seeds); err != nil && !mongo.IsDuplicateKeyError(err) {
		return backendErr("seed "+collection, err)
	}
	return nil
}

func (s *MongoStore) GetAll(ctx context.Context, collection string, out any) error {
	if err := s.seedIfEmpty(ctx, collection); err != nil {
		return err
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return backendErr("find "+collection, err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return backendErr("decode "+collection, err)
	}
	return nil
}

func (s *MongoStore) SetAll(ctx context.Context, collection string, docs any) error {
	coll := s.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return backendErr("clear "+collection, err)
	}
	list := anySlice(docs)
	if len(list) == 0 {
		return nil
	}
	if _, err := coll.InsertMany(ctx, list); err != nil {
		return backendErr("replace "+collection, err)
	}
	return nil
}

func anySlice(docs any) []any {
	v := reflect.ValueOf(docs)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return nil
	}
	list := make([]any, v.Len())
	for i := range list {
		list[i] = v.Index(i).Interface()
	}
	return list
}

func (s *MongoStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	id, _ := m["_id"].(string)
	if id == "" {
		id = primitive.NewObjectID().Hex()
		m["_id"] = id
	}
	if _, err := s.db.Collection(collection).InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", models.NewConflictError("", "duplicate value for a unique field")
		}
		return "", backendErr("insert into "+collection, err)
	}
	return id, nil
}

func (s *MongoStore) Update(ctx context.Context, collection string, id string, fields map[string]any) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflictError("", "duplicate value for a unique field")
		}
		return backendErr("update "+collection, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection string, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return backendErr("delete from "+collection, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
	}
	return nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter map[string]any, sort *Sort, out any) (bool, error) {
	if err := s.seedIfEmpty(ctx, collection); err != nil {
		return false, err
	}
	opts := options.Find()
	if sort != nil {
		dir := 1
		if sort.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: dir}})
	}
	cur, err := s.db.Collection(collection).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return false, backendErr("find "+collection, err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return false, backendErr("decode "+collection, err)
	}
	return true, nil
}

const sessionDocID = "current"

type sessionDoc struct {
	ID   string   `bson:"_id"`
	User bson.Raw `bson:"user"`
}

func (s *MongoStore) GetSession(ctx context.Context, out any) (bool, error) {
	var doc sessionDoc
	err := s.db.Collection(sessionCollection).FindOne(ctx, bson.M{"_id": sessionDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, backendErr("read session", err)
	}
	return true, bson.Unmarshal(doc.User, out)
}

func (s *MongoStore) SetSession(ctx context.Context, user any) error {
	raw, err := bson.Marshal(user)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(sessionCollection).ReplaceOne(ctx,
		bson.M{"_id": sessionDocID},
		sessionDoc{ID: sessionDocID, User: raw},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return backendErr("write session", err)
	}
	return nil
}

func (s *MongoStore) ClearSession(ctx context.Context) error {
	_, err := s.db.Collection(sessionCollection).DeleteOne(ctx, bson.M{"_id": sessionDocID})
	if err != nil {
		return backendErr("clear session", err)
	}
	return nil
}
