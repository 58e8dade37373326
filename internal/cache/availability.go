package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/JPedroSoeiro/doutor-agenda/internal/domain/scheduling"
)

// TTL curto: a exclusão de slots já passados torna a visão de "hoje"
// perecível minuto a minuto.
const availabilityTTL = 30 * time.Second

func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, availability cache disabled: %v", err)
		_ = rdb.Close()
		return nil
	}

	return rdb
}

// AvailabilityCache guarda o resultado do resolver por (médico, data).
// Mutadores administrativos e agendamentos invalidam a chave para que a
// próxima leitura observe a mudança imediatamente. Todas as operações são
// seguras com receiver nil ou sem Redis configurado.
type AvailabilityCache struct {
	rdb *redis.Client
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	if rdb == nil {
		return nil
	}
	return &AvailabilityCache{rdb: rdb}
}

func key(doctorID uuid.UUID, day string) string {
	return fmt.Sprintf("availability:%s:%s", doctorID, day)
}

func (c *AvailabilityCache) Get(ctx context.Context, doctorID uuid.UUID, day string) (*domain.DayAvailability, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(doctorID, day)).Bytes()
	if err != nil {
		return nil, false
	}

	var out domain.DayAvailability
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (c *AvailabilityCache) Set(ctx context.Context, doctorID uuid.UUID, day string, v *domain.DayAvailability) {
	if c == nil || v == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(doctorID, day), raw, availabilityTTL).Err(); err != nil {
		log.Printf("availability cache set failed: %v", err)
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, doctorID uuid.UUID, day string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(doctorID, day)).Err(); err != nil {
		log.Printf("availability cache invalidate failed: %v", err)
	}
}
