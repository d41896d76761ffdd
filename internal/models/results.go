package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Wire-format acknowledgement documents. Field names follow the shapes
// clients already parse for insert, update and delete responses.

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
	UpsertedCount int64       `json:"upsertedCount"`
	MatchedCount  int64       `json:"matchedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertResult(res *mongo.InsertOneResult) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: hexID(res.InsertedID)}
}

func NewUpdateResult(res *mongo.UpdateResult) UpdateResult {
	out := UpdateResult{
		Acknowledged:  true,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		MatchedCount:  res.MatchedCount,
	}
	if res.UpsertedID != nil {
		out.UpsertedID = hexID(res.UpsertedID)
	}
	return out
}

func NewDeleteResult(res *mongo.DeleteResult) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// hexID renders ObjectIDs the way clients expect them in JSON; other id
// types pass through untouched.
func hexID(id interface{}) interface{} {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return id
}
