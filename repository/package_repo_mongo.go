package repository

import (
	"context"

	"assetverse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoPackageRepo struct {
	DB     *mongo.Client
	DBName string
}

func NewMongoPackageRepo(db *mongo.Client, dbName string) *MongoPackageRepo {
	return &MongoPackageRepo{DB: db, DBName: dbName}
}

func (r *MongoPackageRepo) List(ctx context.Context) ([]models.Document, error) {
	cur, err := r.DB.Database(r.DBName).Collection(models.CollectionPackages).Find(ctx, bson.M{})
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
