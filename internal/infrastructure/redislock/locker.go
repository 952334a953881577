// Package redislock implementa el candado distribuido de importaciones sobre Redis.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-tienda/internal/application/salesimport"
	"github.com/jhoicas/inventario-tienda/pkg/config"
)

var _ salesimport.BatchLocker = (*Locker)(nil)

// retryInterval separación entre intentos mientras se espera el candado.
const retryInterval = 100 * time.Millisecond

// Locker candado por clave con expiración; solo el dueño del token puede liberarlo.
type Locker struct {
	client *redislock.Client
}

// New construye el candado sobre un cliente go-redis existente.
func New(rdb redis.UniversalClient) *Locker {
	return &Locker{client: redislock.New(rdb)}
}

// NewClient abre el cliente Redis de la configuración y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// Acquire intenta tomar key durante ttl, reintentando hasta wait.
func (l *Locker) Acquire(ctx context.Context, key string, ttl, wait time.Duration) (func(context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, key, ttl, &redislock.Options{RetryStrategy: retryStrategy(wait)})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, salesimport.ErrLockNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("obtener candado %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("liberar candado %s: %w", key, err)
		}
		return nil
	}, nil
}

func retryStrategy(wait time.Duration) redislock.RetryStrategy {
	if wait <= 0 {
		return redislock.NoRetry()
	}
	return redislock.LimitRetry(redislock.LinearBackoff(retryInterval), retries(wait))
}

func retries(wait time.Duration) int {
	n := int(wait / retryInterval)
	if n < 1 {
		n = 1
	}
	return n
}
