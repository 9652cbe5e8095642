package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the session-store client. Returns nil when addr is empty
// or the server is unreachable; callers fall back to the in-memory store.
func ConnectRedis(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Gagal konek Redis di %s: %v (pakai session store memori)", addr, err)
		_ = rdb.Close()
		return nil
	}

	log.Printf("Berhasil konek ke Redis di %s", addr)
	return rdb
}
