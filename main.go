package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/growthdesk/growthdesk/backend/go-services/handlers"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/config"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/database"
	"github.com/growthdesk/growthdesk/backend/go-services/internal/docstore"
	"github.com/growthdesk/growthdesk/backend/go-services/pkg/logger"
	"github.com/growthdesk/growthdesk/backend/go-services/pkg/metrics"
	"github.com/growthdesk/growthdesk/backend/go-services/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: db=%s redis=%v", cfg.MongoDB.Database, cfg.Redis.Host != "")

	r := gin.New()

	// allow the dashboard frontend from any origin, credentials included
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis when configured so the rate limiter can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per client IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races. A failed
	// connection is not fatal: the service keeps running in degraded mode where
	// data routes fail but / and /test still answer.
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}

	var store docstore.Store
	if errConn != nil {
		logger.Warnf("could not connect to MongoDB after %d attempts, starting degraded: %v", maxAttempts, errConn)
	} else {
		defer func() { _ = client.Disconnect(ctx) }()
		store = docstore.NewMongoStore(client.Database(cfg.MongoDB.Database))
		logger.Infof("using MongoDB database %q", cfg.MongoDB.Database)
	}

	api := handlers.NewAPI(store)
	api.Register(r)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting growth platform API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
