package repository

import (
	"context"
	"fmt"

	"assetverse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoAssetRepo struct {
	DB     *mongo.Client
	DBName string
}

func NewMongoAssetRepo(db *mongo.Client, dbName string) *MongoAssetRepo {
	return &MongoAssetRepo{DB: db, DBName: dbName}
}

func (r *MongoAssetRepo) collection() *mongo.Collection {
	return r.DB.Database(r.DBName).Collection(models.CollectionAssets)
}

func (r *MongoAssetRepo) List(ctx context.Context) ([]models.Document, error) {
	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Document
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Document{}
	}
	return out, nil
}

func (r *MongoAssetRepo) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	res, err := r.collection().InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: formatInsertedID(res.InsertedID)}, nil
}

func (r *MongoAssetRepo) Update(ctx context.Context, id string, fields models.Document) (*models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any document.
		return nil, ErrNotFound
	}

	delete(fields, "_id")

	// An empty $set is rejected by the server; an empty patch still has to
	// report whether the id exists.
	if len(fields) == 0 {
		n, err := r.collection().CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrNotFound
		}
		return &models.UpdateResult{MatchedCount: n}, nil
	}

	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoAssetRepo) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		return nil, ErrNotFound
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// formatInsertedID renders the driver's generated id as a string for the
// insert acknowledgment.
func formatInsertedID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
