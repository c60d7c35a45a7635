package grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const keyPrefix = "calendar:grid:"

// Cache кэш построенных сеток календаря в Redis
// Ключ - scheduling.GridKey от входных данных, поэтому инвалидация не нужна:
// любые изменения записей дают другой ключ, старые значения истекают по TTL
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш поверх готового клиента Redis
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// NewClient создает клиент Redis и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrRedis, addr, err)
	}

	return client, nil
}

// Get возвращает сетку по ключу; found=false, если ключа нет
func (c *Cache) Get(ctx context.Context, key string) (*domain.Grid, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: get: %v", ErrRedis, err)
	}

	grid, err := decode(data)
	if err != nil {
		return nil, false, err
	}

	return grid, true, nil
}

// Set сохраняет сетку с TTL кэша
func (c *Cache) Set(ctx context.Context, key string, grid *domain.Grid) error {
	data, err := encode(grid)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrRedis, err)
	}

	return nil
}
