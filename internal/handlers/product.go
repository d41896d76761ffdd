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

	"secondlit/internal/models"
)

type createProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Seller        string  `json:"seller" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	ResalePrice   float64 `json:"resalePrice"`
	OriginalPrice float64 `json:"originalPrice"`
	YearsOfUse    int     `json:"yearsOfUse"`
	Condition     string  `json:"condition"`
	Location      string  `json:"location"`
	Phone         string  `json:"phone"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
}

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		product := models.Product{
			Name:          strings.TrimSpace(req.Name),
			Seller:        strings.TrimSpace(req.Seller),
			Category:      strings.TrimSpace(req.Category),
			ResalePrice:   req.ResalePrice,
			OriginalPrice: req.OriginalPrice,
			YearsOfUse:    req.YearsOfUse,
			Condition:     req.Condition,
			Location:      req.Location,
			Phone:         req.Phone,
			Image:         req.Image,
			Description:   req.Description,
			PostedAt:      time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection(productsCollection).InsertOne(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] listed %q by %s", route, product.Name, product.Seller)
		c.JSON(http.StatusOK, models.NewInsertResult(res))
	}
}

// sellerFilter matches listings by seller email. An absent name query
// filters on the empty string, which matches nothing well-formed.
func sellerFilter(name string) bson.M {
	return bson.M{"seller": name}
}

func advertisedFilter() bson.M {
	return bson.M{"advertised": true}
}

func categoryFilter(name string) bson.M {
	return bson.M{"category": name}
}

// ListProductsBySeller returns the listings whose seller field equals the
// name query parameter.
func ListProductsBySeller(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		listProducts(c, db, route, sellerFilter(c.Query("name")))
	}
}

func ListAdvertisedProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/advertised"
		listProducts(c, db, route, advertisedFilter())
	}
}

func ListProductsByCategory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:categoryName"
		listProducts(c, db, route, categoryFilter(c.Param("categoryName")))
	}
}

func listProducts(c *gin.Context, db *mongo.Database, route string, filter bson.M) {
	defer handlePanic(c, route)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cursor, err := db.Collection(productsCollection).Find(ctx, filter)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, route, "db error")
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		respondWithError(c, http.StatusInternalServerError, route, "decode error")
		return
	}

	log.Printf("[%s] returning %d products", route, len(products))
	c.JSON(http.StatusOK, products)
}

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /products/:id"
		defer handlePanic(c, route)

		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection(productsCollection).DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, models.NewDeleteResult(res))
	}
}

// AdvertiseProduct flags a listing for the advertised shelf. Upsert
// semantics: an unknown id creates a stub holding only the flag.
func AdvertiseProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /products/:id"
		defer handlePanic(c, route)

		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection(productsCollection).UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"advertised": true}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, models.NewUpdateResult(res))
	}
}
