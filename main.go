package main

import (
	"log"
	"net/http"

	"business-service/config"
	"business-service/events"
	"business-service/handlers"
	"business-service/preferences"
	"business-service/routes"
	"business-service/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize database
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize Business-Service database: ", err)
	}
	log.Println("✅ Database connected and migrated successfully")

	if cfg.SeedCategories {
		n, err := config.SeedCategories(db)
		if err != nil {
			log.Println("⚠️  Failed to seed cuisine categories:", err)
		} else if n > 0 {
			log.Printf("🌱 Seeded %d cuisine categories", n)
		}
	}

	store, err := storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatal("Failed to prepare upload directory: ", err)
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.RabbitMQURL != "" {
		amqpPub, err := events.DialAMQP(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			log.Println("⚠️  Event publishing disabled:", err)
		} else {
			publisher = amqpPub
			log.Printf("📣 Publishing business events to exchange %q", cfg.EventsExchange)
		}
	}
	defer publisher.Close()

	prefs := preferences.NewClient(cfg.UserServiceURL, cfg.PreferenceTimeout)
	h := handlers.New(db, prefs, publisher, cfg.DefaultLogoURL())

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Business Service",
			"version": "1.0.0",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Business Service",
			"api":     "/api/business",
			"health":  "/health",
		})
	})

	r.Static("/uploads", store.Dir())
	routes.SetupRoutes(r, h, store, cfg.JWTSecret)

	// CORS for the front end
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authorization"},
	})

	log.Printf("🚀 Business Server running on http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
