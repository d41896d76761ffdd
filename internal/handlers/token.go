package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IssueToken hands out an access token for any email that has a user
// record. An unknown email answers with an empty token, never an error.
func IssueToken(db *mongo.Database, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /jwt"
		defer handlePanic(c, route)

		// The query value is looked up and embedded verbatim; emails
		// are stored exactly as clients sent them.
		email := c.Query("email")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Err()
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusOK, gin.H{"accessToken": ""})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		token, err := IssueAccessToken(email, secret, ttl)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		log.Printf("[%s] issued token for %s", route, email)
		c.JSON(http.StatusOK, gin.H{"accessToken": token})
	}
}

// IssueAccessToken signs an HS256 token carrying the email claim.
func IssueAccessToken(email, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
