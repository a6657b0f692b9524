package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/config"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/persistence"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main writes the default catalog, settings and policies to the snapshot
// substrate. Usage: go run cmd/seed/main.go [-force]
// This is a standalone CLI tool, not part of the main application.
func main() {
	force := flag.Bool("force", false, "overwrite existing snapshots")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MONTCLAIRE STOREFRONT - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	adapter := buildAdapter()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	seed(ctx, adapter, persistence.KeyCatalog, "catalog", store.DefaultProducts(), *force)
	seed(ctx, adapter, persistence.KeySettings, "settings", store.DefaultSettings(), *force)
	seed(ctx, adapter, persistence.KeyPolicies, "policies", store.DefaultPolicies(), *force)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seeding Complete!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/products")
}

func seed(ctx context.Context, adapter persistence.Adapter, key, label string, value interface{}, force bool) {
	if !force {
		if _, err := adapter.Load(ctx, key); err == nil {
			fmt.Printf("⏭  %s already seeded, skipping (use -force to overwrite)\n", label)
			return
		} else if !errors.Is(err, persistence.ErrNotFound) {
			log.Fatalf("Failed to check %s: %v", label, err)
		}
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Fatalf("Failed to encode %s: %v", label, err)
	}
	if err := adapter.Save(ctx, key, raw); err != nil {
		log.Fatalf("Failed to seed %s: %v", label, err)
	}
	log.Printf("✓ Seeded %s", label)
}

func buildAdapter() persistence.Adapter {
	switch driver := os.Getenv("PERSISTENCE_DRIVER"); driver {
	case "", "redis":
		config.ConnectRedis()
		log.Println("✓ Connected to redis")
		return persistence.NewRedisAdapter(config.RedisClient)
	case "postgres":
		config.InitDB()
		adapter, err := persistence.NewGormAdapter(config.DB)
		if err != nil {
			log.Fatalf("Failed to initialize postgres persistence: %v", err)
		}
		log.Println("✓ Connected to postgres")
		return adapter
	default:
		log.Fatalf("Unknown PERSISTENCE_DRIVER: %q", driver)
		return nil
	}
}
