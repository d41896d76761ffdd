package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"secondlit/internal/config"
	"secondlit/internal/database"
	"secondlit/internal/handlers"
	"secondlit/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureBookingIndexes(db); err != nil {
		log.Printf("booking index warning: %v", err)
	}

	auth := middleware.RequireAuth(config.AppEnv.JWTSecret)
	accountType := database.AccountTypeByEmail(db)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", handlers.Home())

	r.POST("/users", handlers.CreateUser(db))
	r.GET("/users/checkAccountType", auth, handlers.CheckAccountType(db))

	admin := r.Group("/users")
	admin.Use(auth, middleware.RequireAdmin(accountType))
	{
		admin.GET("/sellers", handlers.ListSellers(db))
		admin.DELETE("/sellers/:id", handlers.DeleteSeller(db))
		admin.PUT("/sellers/:id", handlers.VerifySeller(db))
		admin.GET("/buyers", handlers.ListBuyers(db))
		admin.DELETE("/buyers/:id", handlers.DeleteBuyer(db))
	}

	r.GET("/jwt", handlers.IssueToken(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	r.GET("/category", handlers.ListCategories(db))

	r.GET("/products", handlers.ListProductsBySeller(db))
	r.GET("/products/advertised", handlers.ListAdvertisedProducts(db))
	r.GET("/products/:categoryName", handlers.ListProductsByCategory(db))

	seller := r.Group("/products")
	seller.Use(auth, middleware.RequireSeller(accountType))
	{
		seller.POST("", handlers.CreateProduct(db))
		seller.DELETE("/:id", handlers.DeleteProduct(db))
		seller.PUT("/:id", handlers.AdvertiseProduct(db))
	}

	r.POST("/booking", handlers.CreateBooking(db))
	r.GET("/booking", handlers.ListBookings(db))

	log.Println("second lit server running on port", config.AppEnv.Port)
	r.Run(":" + config.AppEnv.Port)
}
