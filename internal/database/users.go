package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"secondlit/internal/models"
)

// AccountTypeByEmail returns a lookup over the users collection for the
// role-gate middleware. A missing account reports found=false, not an error.
func AccountTypeByEmail(db *mongo.Database) func(ctx context.Context, email string) (string, bool, error) {
	users := db.Collection("usersCollection")
	return func(ctx context.Context, email string) (string, bool, error) {
		var user models.User
		err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return user.AccountType, true, nil
	}
}
