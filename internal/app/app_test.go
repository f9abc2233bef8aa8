package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
)

func TestCloseFlushesLoggerAndRedis(t *testing.T) {
	log, err := logger.New("development", "error")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	a := &App{Log: log, Redis: client}
	a.Close()

	if err := client.Ping(context.Background()).Err(); err == nil {
		t.Fatalf("want redis client closed after Close")
	}
}

func TestCloseWithoutRedis(t *testing.T) {
	log, err := logger.New("development", "error")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}

	a := &App{Log: log}
	a.Close()
}
