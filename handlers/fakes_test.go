package handlers

import (
	"context"
	"errors"

	"assetverse/models"
	"assetverse/repository"
)

// In-memory repository fakes shared by the handler tests.

type fakeUserRepo struct {
	users   map[string]*models.User
	failAll bool
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	m := map[string]*models.User{}
	for _, u := range users {
		m[u.Email] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.InsertResult, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	f.users[user.Email] = user
	return &models.InsertResult{InsertedID: "generated-id"}, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	return f.users[email], nil
}

func (f *fakeUserRepo) UpdateName(_ context.Context, email, name string) (*models.UpdateResult, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	u, ok := f.users[email]
	if !ok {
		return &models.UpdateResult{}, nil
	}
	u.Name = name
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeAssetRepo struct {
	assets map[string]models.Document
	nextID int
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: map[string]models.Document{}}
}

func (f *fakeAssetRepo) List(context.Context) ([]models.Document, error) {
	out := []models.Document{}
	for id, doc := range f.assets {
		copied := models.Document{"_id": id}
		for k, v := range doc {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out, nil
}

func (f *fakeAssetRepo) Create(_ context.Context, doc models.Document) (*models.InsertResult, error) {
	f.nextID++
	id := fakeID(f.nextID)
	f.assets[id] = doc
	return &models.InsertResult{InsertedID: id}, nil
}

func (f *fakeAssetRepo) Update(_ context.Context, id string, fields models.Document) (*models.UpdateResult, error) {
	doc, ok := f.assets[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeAssetRepo) Delete(_ context.Context, id string) (*models.DeleteResult, error) {
	if _, ok := f.assets[id]; !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.assets, id)
	return &models.DeleteResult{DeletedCount: 1}, nil
}

type fakeRequestRepo struct {
	docs []models.Document
}

func (f *fakeRequestRepo) Create(_ context.Context, doc models.Document) (*models.InsertResult, error) {
	f.docs = append(f.docs, doc)
	return &models.InsertResult{InsertedID: fakeID(len(f.docs))}, nil
}

func (f *fakeRequestRepo) List(_ context.Context, hrEmail string) ([]models.Document, error) {
	out := []models.Document{}
	for _, doc := range f.docs {
		if hrEmail == "" || doc[models.FieldHREmail] == hrEmail {
			out = append(out, doc)
		}
	}
	return out, nil
}

type fakePackageRepo struct {
	docs []models.Document
}

func (f *fakePackageRepo) List(context.Context) ([]models.Document, error) {
	out := append([]models.Document{}, f.docs...)
	return out, nil
}

func fakeID(n int) string {
	const hex = "0123456789abcdef"
	id := make([]byte, 24)
	for i := range id {
		id[i] = hex[n%16]
	}
	return string(id)
}
