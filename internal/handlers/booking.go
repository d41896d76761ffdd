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

	"secondlit/internal/models"
)

type createBookingRequest struct {
	BuyerName       string  `json:"buyerName"`
	BuyerEmail      string  `json:"buyerEmail" binding:"required"`
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	Price           float64 `json:"price"`
	MeetingLocation string  `json:"meetingLocation"`
	Phone           string  `json:"phone"`
}

// CreateBooking records a buyer's claim on a listing. Product fields are
// denormalized from the request; the productId is not checked against
// the products collection.
func CreateBooking(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /booking"
		defer handlePanic(c, route)

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		booking := models.Booking{
			BuyerName:       strings.TrimSpace(req.BuyerName),
			BuyerEmail:      strings.TrimSpace(req.BuyerEmail),
			ProductID:       req.ProductID,
			ProductName:     req.ProductName,
			Price:           req.Price,
			MeetingLocation: req.MeetingLocation,
			Phone:           req.Phone,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection(bookingCollection).InsertOne(ctx, booking)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] booked %q for %s", route, booking.ProductName, booking.BuyerEmail)
		c.JSON(http.StatusOK, models.NewInsertResult(res))
	}
}

func buyerFilter(email string) bson.M {
	return bson.M{"buyerEmail": email}
}

func ListBookings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /booking"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection(bookingCollection).Find(ctx, buyerFilter(c.Query("email")))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		bookings := []models.Booking{}
		if err := cursor.All(ctx, &bookings); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d bookings", route, len(bookings))
		c.JSON(http.StatusOK, bookings)
	}
}
