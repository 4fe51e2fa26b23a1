// Resets the admin credentials in the content store. Reads ADMIN_USERNAME
// and ADMIN_PASSWORD from the environment (or .env) and writes the hashed
// password through the configured store.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/minhvu/portfolio-cms/adapters/persistence"
	"github.com/minhvu/portfolio-cms/internal/config"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/auth"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

func main() {
	fmt.Println("resetting admin credentials...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	var store portfolio.Store
	if cfg.Store.Backend == "redis" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("cannot connect Redis: %v", err)
		}
		defer redisClient.Close()
		store = persistence.NewRedisStore(redisClient, appLogger)
	} else {
		store = persistence.NewFileStore(cfg.Store.Path, appLogger)
	}

	err = store.Update(context.Background(), func(doc *portfolio.Document) error {
		doc.AdminCredentials = portfolio.AdminCredentials{
			Username:     username,
			PasswordHash: hash,
		}
		return nil
	})
	if err != nil {
		log.Fatalf("cannot update credentials: %v", err)
	}

	fmt.Printf("admin credentials for '%s' updated successfully!\n", username)
}
