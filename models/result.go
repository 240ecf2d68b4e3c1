package models

// Store acknowledgments returned to the client, mirroring the document
// store's result shapes.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
