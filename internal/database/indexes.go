package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userEmailIndex enforces email uniqueness at the store, closing the
// read-before-insert race in the registration handler. The partial
// filter is load-bearing: verify upserts on stale ids create flag-only
// stub documents without an email, and those must not collide on the
// index's null slot.
func userEmailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"email": bson.M{
					"$exists": true,
				},
			}),
	}
}

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Println("EnsureUserIndexes: creating email_unique index")
	_, err := db.Collection("usersCollection").Indexes().CreateOne(ctx, userEmailIndex())
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	return nil
}

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "seller", Value: 1}},
			Options: options.Index().SetName("seller_index"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category_index"),
		},
	}

	log.Println("EnsureProductIndexes: creating seller and category indexes")
	_, err := db.Collection("products").Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Println("EnsureProductIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureBookingIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	buyerIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "buyerEmail", Value: 1}},
		Options: options.Index().SetName("buyerEmail_index"),
	}

	log.Println("EnsureBookingIndexes: creating buyerEmail_index index")
	_, err := db.Collection("booking").Indexes().CreateOne(ctx, buyerIndex)
	if err != nil {
		log.Println("EnsureBookingIndexes: buyerEmail index error:", err)
		return err
	}
	return nil
}
