// @title Montclaire Storefront API
// @version 1.0
// @description Backend for the MONTCLAIRE fragrance storefront and admin console
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/config"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/routes/admin_routes"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/routes/shop_routes"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis backs sessions, rate limiting and the activity log regardless of
	// which persistence driver carries the snapshots.
	config.ConnectRedis()

	adapter := buildAdapter()

	state := store.Init(adapter)
	loadCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	state.Load(loadCtx)
	cancel()
	log.Println("✅ Store state loaded")

	// ✅ Initialize JWT Service for the admin gate
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize the admin gate (shared console secret)
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("❌ ADMIN_PASSWORD environment variable not set")
	}
	if err := services.InitAdminGate(adminPassword); err != nil {
		log.Fatalf("Failed to initialize admin gate: %v", err)
	}
	log.Println("✅ Admin gate initialized")

	// Cloudinary is optional: without credentials the console just loses
	// the image upload endpoint.
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️ Cloudinary not configured, image uploads disabled")
	}

	// Consult degrades to a concierge fallback without a key, never fatal.
	services.InitConsultService(os.Getenv("GEMINI_API_KEY"))

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	shop_routes.SetupShopRoutes(api)
	log.Println("✅ Shop routes registered")

	admin_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}

// buildAdapter picks the snapshot substrate from PERSISTENCE_DRIVER:
// redis (default), postgres, or memory for throwaway runs.
func buildAdapter() persistence.Adapter {
	switch driver := os.Getenv("PERSISTENCE_DRIVER"); driver {
	case "", "redis":
		log.Println("✅ Persistence driver: redis")
		return persistence.NewRedisAdapter(config.RedisClient)
	case "postgres":
		config.InitDB()
		adapter, err := persistence.NewGormAdapter(config.DB)
		if err != nil {
			log.Fatalf("Failed to initialize postgres persistence: %v", err)
		}
		log.Println("✅ Persistence driver: postgres")
		return adapter
	case "memory":
		log.Println("⚠️ Persistence driver: memory (state is lost on restart)")
		return persistence.NewMemoryAdapter()
	default:
		log.Fatalf("Unknown PERSISTENCE_DRIVER: %q", driver)
		return nil
	}
}
