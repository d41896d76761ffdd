package models

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewInsertResultRendersHexID(t *testing.T) {
	oid := primitive.NewObjectID()
	out := NewInsertResult(&mongo.InsertOneResult{InsertedID: oid})

	if !out.Acknowledged {
		t.Fatal("expected acknowledged insert result")
	}
	if out.InsertedID != oid.Hex() {
		t.Fatalf("expected hex id %s, got %v", oid.Hex(), out.InsertedID)
	}
}

func TestNewUpdateResultUpsertPath(t *testing.T) {
	oid := primitive.NewObjectID()
	out := NewUpdateResult(&mongo.UpdateResult{
		MatchedCount:  0,
		ModifiedCount: 0,
		UpsertedCount: 1,
		UpsertedID:    oid,
	})

	if out.UpsertedCount != 1 || out.MatchedCount != 0 {
		t.Fatalf("unexpected counts: %+v", out)
	}
	if out.UpsertedID != oid.Hex() {
		t.Fatalf("expected upsertedId %s, got %v", oid.Hex(), out.UpsertedID)
	}

	body, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, field := range []string{"acknowledged", "modifiedCount", "upsertedId", "upsertedCount", "matchedCount"} {
		if !strings.Contains(string(body), `"`+field+`"`) {
			t.Fatalf("expected field %s in wire result, got %s", field, body)
		}
	}
}

func TestNewUpdateResultPlainUpdateHasNullUpsertedID(t *testing.T) {
	out := NewUpdateResult(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1})

	body, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"upsertedId":null`) {
		t.Fatalf("expected null upsertedId for plain update, got %s", body)
	}
}

func TestNewDeleteResultZeroCountIsStillAcknowledged(t *testing.T) {
	out := NewDeleteResult(&mongo.DeleteResult{DeletedCount: 0})

	if !out.Acknowledged || out.DeletedCount != 0 {
		t.Fatalf("expected acknowledged zero-count delete, got %+v", out)
	}
}
