package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/ruangpeduli/donation-backend/config"
)

// RateLimiter limits requests per IP on the public write endpoints.
// With REDIS_ADDR configured the counters are shared across replicas;
// otherwise an in-memory store is used.
func RateLimiter(cfg *config.Config, limit int64, period time.Duration) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: period,
		Limit:  limit,
	}

	var store limiter.Store
	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		s, err := redisstore.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "donation_rl",
		})
		if err != nil {
			log.Printf("redis limiter store unavailable, falling back to memory: %v", err)
			store = memory.NewStore()
		} else {
			store = s
		}
	} else {
		store = memory.NewStore()
	}

	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}
