package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"secondlit/internal/middleware"
	"secondlit/internal/models"
)

type createUserRequest struct {
	Email       string `json:"email" binding:"required"`
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

// CreateUser registers an identity. Sign-in flows may post the same user
// repeatedly, so an email that already has a record answers with a bare
// acknowledgement instead of a duplicate.
func CreateUser(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /users"
		defer handlePanic(c, route)

		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		// Stored verbatim; the token issuer looks emails up with the
		// same raw value clients registered with.
		email := req.Email

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		users := db.Collection(usersCollection)

		err := users.FindOne(ctx, bson.M{"email": email}).Err()
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"acknowledged": true})
			return
		}
		if err != mongo.ErrNoDocuments {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		user := models.User{
			Email:       email,
			Name:        strings.TrimSpace(req.Name),
			AccountType: req.AccountType,
		}

		res, err := users.InsertOne(ctx, user)
		if mongo.IsDuplicateKeyError(err) {
			// Concurrent registration lost the race against the unique
			// email index; the record exists either way.
			c.JSON(http.StatusOK, gin.H{"acknowledged": true})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] registered %s as %s", route, email, req.AccountType)
		c.JSON(http.StatusOK, models.NewInsertResult(res))
	}
}

// CheckAccountType reports the stored account type for the caller's own
// email. Asking about anyone else's email is rejected.
func CheckAccountType(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /users/checkAccountType"
		defer handlePanic(c, route)

		email := c.Query("email")
		if email != middleware.EmailFromContext(c) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err := db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"userAccountType": user.AccountType})
	}
}

func ListSellers(db *mongo.Database) gin.HandlerFunc {
	return listUsersByAccountType(db, models.AccountTypeSeller, "GET /users/sellers")
}

func ListBuyers(db *mongo.Database) gin.HandlerFunc {
	return listUsersByAccountType(db, models.AccountTypeBuyer, "GET /users/buyers")
}

func listUsersByAccountType(db *mongo.Database, accountType, route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection(usersCollection).Find(ctx, bson.M{"accountType": accountType})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		users := []models.User{}
		if err := cursor.All(ctx, &users); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d users", route, len(users))
		c.JSON(http.StatusOK, users)
	}
}

func DeleteSeller(db *mongo.Database) gin.HandlerFunc {
	return deleteUserByID(db, "DELETE /users/sellers/:id")
}

func DeleteBuyer(db *mongo.Database) gin.HandlerFunc {
	return deleteUserByID(db, "DELETE /users/buyers/:id")
}

func deleteUserByID(db *mongo.Database, route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, route)

		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection(usersCollection).DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, models.NewDeleteResult(res))
	}
}

// VerifySeller flips the verified flag. The upsert means a stale id
// creates a stub document holding only the flag; callers relying on that
// get the same acknowledgement either way.
func VerifySeller(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /users/sellers/:id"
		defer handlePanic(c, route)

		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection(usersCollection).UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"verified": true}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, models.NewUpdateResult(res))
	}
}
