package repository

import (
	"context"

	"assetverse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRequestRepo struct {
	DB     *mongo.Client
	DBName string
}

func NewMongoRequestRepo(db *mongo.Client, dbName string) *MongoRequestRepo {
	return &MongoRequestRepo{DB: db, DBName: dbName}
}

func (r *MongoRequestRepo) collection() *mongo.Collection {
	return r.DB.Database(r.DBName).Collection(models.CollectionRequests)
}

func (r *MongoRequestRepo) Create(ctx context.Context, doc models.Document) (*models.InsertResult, error) {
	res, err := r.collection().InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: formatInsertedID(res.InsertedID)}, nil
}

func (r *MongoRequestRepo) List(ctx context.Context, hrEmail string) ([]models.Document, error) {
	filter := bson.M{}
	if hrEmail != "" {
		filter[models.FieldHREmail] = hrEmail
	}

	opts := options.Find().SetSort(bson.D{{Key: models.FieldRequestDate, Value: -1}})

	cur, err := r.collection().Find(ctx, filter, opts)
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
