package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoDB struct {
	Client *mongo.Client
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewMongoDB(url string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return &MongoDB{
		Ctx:    ctx,
		Cancel: cancel,
		URL:    url,
	}
}

func (m *MongoDB) Connect() error {
	opts := options.Client().
		ApplyURI(m.URL).
		SetServerSelectionTimeout(15 * time.Second).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(m.Ctx, opts)
	if err != nil {
		return err
	}
	m.Client = client
	return m.Client.Ping(m.Ctx, readpref.Primary())
}

func (m *MongoDB) Disconnect() error {
	m.Cancel()
	return m.Client.Disconnect(context.Background())
}

func (m *MongoDB) GetContext() context.Context {
	return m.Ctx
}
