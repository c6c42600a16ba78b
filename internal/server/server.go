package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"

	"github.com/CodedGrimoire/ChartGenie/internal/config"
	"github.com/CodedGrimoire/ChartGenie/internal/database"
	"github.com/CodedGrimoire/ChartGenie/internal/handlers"
	"github.com/CodedGrimoire/ChartGenie/internal/llm"
	"github.com/CodedGrimoire/ChartGenie/internal/repositories"
	"github.com/CodedGrimoire/ChartGenie/internal/routes"
	"github.com/CodedGrimoire/ChartGenie/internal/services"
)

func NewServer() *http.Server {
	cfg := config.Load()

	// Session store: durable when DATABASE_URL is set, in-memory otherwise
	var sessionStore repositories.SessionStore
	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		store, err := repositories.NewPostgresSessionStore(pool)
		if err != nil {
			log.Fatalf("failed to initialize session store: %v", err)
		}
		sessionStore = store
		log.Println("Using PostgreSQL session store")
	} else {
		sessionStore = repositories.NewMemorySessionStore()
		log.Println("Using in-memory session store")
	}

	// Response cache is opportunistic; an unreachable Redis just disables it
	var cache repositories.DiagramCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis at %s unreachable, caching disabled: %v", cfg.RedisAddr, err)
		} else {
			cache = repositories.NewRedisDiagramCache(rdb, cfg.CacheTTL)
			log.Println("Connected to Redis successfully")
		}
	}

	// Without an API key every request runs the rule-based generator
	var completer llm.Completer
	if cfg.LLMAPIKey != "" {
		completer = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	} else {
		log.Println("LLM_API_KEY not set; diagrams will be generated by built-in rules only")
	}

	// Dependency injection
	diagramService := services.NewDiagramService(completer, sessionStore, cache)
	diagramHandler := handlers.NewDiagramHandler(diagramService, cfg.MaxMessageLength)
	sessionHandler := handlers.NewSessionHandler(diagramService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	routes.RegisterRoutes(router, diagramHandler, sessionHandler)

	go sweepSessions(sessionStore, cfg.SweepInterval, cfg.SessionTTL)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

// sweepSessions evicts idle sessions for the lifetime of the process.
func sweepSessions(store repositories.SessionStore, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		removed, err := store.Sweep(context.Background(), ttl)
		if err != nil {
			log.Printf("session sweep failed: %v", err)
			continue
		}
		if removed > 0 {
			log.Printf("Swept %d idle sessions", removed)
		}
	}
}
