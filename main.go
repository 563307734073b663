package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aidconnect/backend/auth"
	"github.com/aidconnect/backend/database"
	"github.com/aidconnect/backend/handlers"
	"github.com/aidconnect/backend/models"
	"github.com/aidconnect/backend/natsserver"
	"github.com/aidconnect/backend/services"
	"github.com/aidconnect/backend/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	defer database.Close(db)

	st := store.New(db)
	authService := auth.New(st, auth.SecretFromEnv())

	// Seed the initial admin account so the approval surface is reachable
	// on a fresh database
	if err := ensureAdminUser(st); err != nil {
		log.Fatalf("❌ Failed to ensure admin user: %v", err)
	}

	// Start embedded NATS server for the live event feed
	natsPort := 4222
	if v := os.Getenv("NATS_PORT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			natsPort = parsed
		}
	}
	natsServer, err := natsserver.New(natsserver.Config{Port: natsPort})
	if err != nil {
		log.Fatalf("❌ Failed to start NATS server: %v", err)
	}
	defer natsServer.Shutdown()

	// Initialize event hub for WebSocket streaming
	eventHub, err := services.NewEventHub(natsServer.Conn())
	if err != nil {
		log.Fatalf("❌ Failed to start event hub: %v", err)
	}
	defer eventHub.Shutdown()
	go eventHub.Run()
	log.Println("📺 Event hub initialized")

	h := handlers.New(st, authService, eventHub)

	// Setup Gin router
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(config))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// WebSocket route for the live event feed (outside /api group)
	router.GET("/ws/events", h.HandleEventsWebSocket)

	// API Routes
	api := router.Group("/api")
	{
		// Event hub stats
		api.GET("/events/stats", h.GetEventHubStats)

		// Auth routes
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", h.Login)
			authGroup.POST("/register", h.Register)
		}

		// Public request routes
		requests := api.Group("/requests")
		{
			requests.GET("", h.GetRequests)
			requests.GET("/:id", h.GetRequest)
			requests.POST("", h.CreateRequest)
			requests.PATCH("/:id", authService.RequireAdmin(), h.UpdateRequestStatus)
		}

		// Donation flow
		api.POST("/donate", h.Donate)

		// Admin routes
		admin := api.Group("/admin", authService.RequireAdmin())
		{
			admin.GET("/requests/pending", h.GetPendingRequests)
			admin.GET("/donations", h.GetDonations)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 AidConnect server running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ensureAdminUser creates the default admin account if it doesn't exist
func ensureAdminUser(st *store.Store) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123" // Change after first run
	}

	if _, err := st.UserByUsername(username); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := st.CreateUser(username, hashed, models.RoleAdmin); err != nil {
		return err
	}
	log.Printf("✅ Created initial admin user (%s)", username)
	return nil
}
