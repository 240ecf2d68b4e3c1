package repository

import (
	"context"
	"errors"
	"time"

	"assetverse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepo struct {
	DB     *mongo.Client
	DBName string
}

func NewMongoUserRepo(db *mongo.Client, dbName string) *MongoUserRepo {
	return &MongoUserRepo{DB: db, DBName: dbName}
}

func (r *MongoUserRepo) collection() *mongo.Collection {
	return r.DB.Database(r.DBName).Collection(models.CollectionUsers)
}

func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) (*models.InsertResult, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: formatInsertedID(res.InsertedID)}, nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}

	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *MongoUserRepo) UpdateName(ctx context.Context, email, name string) (*models.UpdateResult, error) {
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"name": name}},
	)
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
