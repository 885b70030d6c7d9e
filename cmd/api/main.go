package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fgabrielqr/sistema-viagens/internal/handlers"
	"github.com/fgabrielqr/sistema-viagens/internal/middleware"
	"github.com/fgabrielqr/sistema-viagens/internal/models"
	"github.com/fgabrielqr/sistema-viagens/internal/repository"
	"github.com/fgabrielqr/sistema-viagens/internal/service"
	"github.com/fgabrielqr/sistema-viagens/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	log.Printf("MONGO_URI: %s", os.Getenv("MONGO_URI"))
	log.Printf("MONGO_DATABASE: %s", os.Getenv("MONGO_DATABASE"))
	log.Printf("API_PORT: %s", os.Getenv("API_PORT"))
	if os.Getenv("JWT_SECRET") != "" {
		log.Println("JWT_SECRET is SET.")
	} else {
		log.Println("JWT_SECRET is NOT SET.")
	}

	// --- Storage ---
	// MongoDB when configured and reachable, otherwise the in-memory store:
	// reads then serve the seed defaults and writes last only as long as the
	// process does.
	st := openStore()

	// --- Wiring ---
	repo := repository.New(st)
	auth := service.NewAuthService(repo)
	trips := service.NewTripService(repo)
	h := handlers.NewHandler(repo, auth, trips)

	// --- Gin Router ---
	r := gin.Default()

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/logout", middleware.AuthMiddleware(), h.Logout)
		authRoutes.GET("/me", middleware.AuthMiddleware(), h.Me)
	}

	apiRoutes := r.Group("/api")
	apiRoutes.Use(middleware.AuthMiddleware())
	{
		// Drivers see and advance their own trips.
		apiRoutes.GET("/trips/mine", h.GetMyTrips)
		apiRoutes.PATCH("/trips/:id/status", h.UpdateTripStatus)

		adminRoutes := apiRoutes.Group("")
		adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminRoutes.GET("/users", h.GetUsers)
			adminRoutes.POST("/users", h.CreateUser)
			adminRoutes.PUT("/users/:id", h.UpdateUser)
			adminRoutes.DELETE("/users/:id", h.DeleteUser)

			adminRoutes.GET("/vehicles", h.GetVehicles)
			adminRoutes.GET("/vehicles/available", h.GetAvailableVehicles)
			adminRoutes.POST("/vehicles", h.CreateVehicle)
			adminRoutes.PUT("/vehicles/:id", h.UpdateVehicle)
			adminRoutes.DELETE("/vehicles/:id", h.DeleteVehicle)

			adminRoutes.GET("/patients", h.GetPatients)
			adminRoutes.POST("/patients", h.CreatePatient)
			adminRoutes.PUT("/patients/:id", h.UpdatePatient)
			adminRoutes.DELETE("/patients/:id", h.DeletePatient)

			adminRoutes.GET("/trips", h.GetTrips)
			adminRoutes.POST("/trips", h.CreateTrip)
			adminRoutes.DELETE("/trips/:id", h.DeleteTrip)
		}
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080" // Default port
	}
	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}

func openStore() store.Store {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Println("MONGO_URI not set, using the in-memory store.")
		return store.NewMemoryStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		log.Printf("MongoDB unreachable, using the in-memory store: %v", err)
		return store.NewMemoryStore()
	}

	ms := store.NewMongoStore(client.Database(os.Getenv("MONGO_DATABASE")))
	if err := ms.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("Successfully connected to MongoDB!")
	return ms
}
