package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront-labs/storegate/internal/adapters/driven/auth"
	"github.com/storefront-labs/storegate/internal/adapters/driven/postgres"
	redisadapter "github.com/storefront-labs/storegate/internal/adapters/driven/redis"
	"github.com/storefront-labs/storegate/internal/adapters/driving/http"
	"github.com/storefront-labs/storegate/internal/core/ports/driven"
	"github.com/storefront-labs/storegate/internal/core/services"
	"golang.org/x/crypto/bcrypt"
)

var version = "dev"

func main() {
	log.Printf("storegate %s starting", version)

	// Configuration from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokenTTL := getEnvDuration("TOKEN_TTL", services.DefaultTokenTTL)
	bcryptCost := getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	port := getEnvInt("PORT", 8080)
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	redisURL := getEnv("REDIS_URL", "")
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
	cookieSecure := getEnvBool("COOKIE_SECURE", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ===== Initialize PostgreSQL =====
	log.Println("Connecting to PostgreSQL...")
	dbConfig := postgres.Config{
		URL:             databaseURL,
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300)) * time.Second,
		ConnMaxIdleTime: time.Duration(getEnvInt("DB_CONN_MAX_IDLE_SEC", 60)) * time.Second,
	}
	db, err := postgres.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize schema (idempotent)
	if err := db.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("PostgreSQL connected and schema initialized")

	// ===== Initialize Redis (optional) =====
	var redisClient *redis.Client
	if redisURL != "" {
		log.Println("Connecting to Redis...")
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Redis connected")
	}

	// ===== Driven adapters (infrastructure) =====
	authAdapter := auth.NewAdapterWithCost(jwtSecret, bcryptCost)
	userStore := postgres.NewUserStore(db)

	// ===== Session Store (Redis if available, otherwise PostgreSQL) =====
	var sessionStore driven.SessionStore
	if redisClient != nil {
		sessionStore = redisadapter.NewSessionStore(redisClient)
		log.Println("Using Redis session store")
	} else {
		pgSessions := postgres.NewSessionStore(db)
		if reaped, err := pgSessions.DeleteExpired(ctx); err == nil && reaped > 0 {
			log.Printf("Reaped %d expired sessions", reaped)
		}
		sessionStore = pgSessions
		log.Println("Using PostgreSQL session store")
	}

	// Services (core business logic)
	authService := services.NewAuthService(userStore, sessionStore, authAdapter, tokenTTL, slog.Default())
	userService := services.NewUserService(userStore, sessionStore, authAdapter)

	log.Printf("Runtime config: token_ttl=%s, bcrypt_cost=%d", tokenTTL, bcryptCost)

	// ===== HTTP server =====
	cfg := http.Config{
		Host:           "0.0.0.0",
		Port:           port,
		Version:        version,
		AllowedOrigins: corsOrigins,
		Cookie: http.CookieConfig{
			Name:   getEnv("COOKIE_NAME", "storegate_token"),
			Secure: cookieSecure,
		},
	}

	var redisPing http.Pinger
	if redisClient != nil {
		redisPing = redisPinger{client: redisClient}
	}

	server := http.NewServer(cfg, authService, userService, db, redisPing)

	log.Printf("API server starting on :%d", port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// redisPinger adapts a redis client to the server's health check interface
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
