package config

import (
	"fmt"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/lock"
	"github.com/gymcore/gymcore/pkg/outbox"
	"gorm.io/gorm"
)

// OutboxRelay builds the outbox relay for this service. When REDIS_URL is set the
// relay polls under a Redis lock shared by every instance of the service.
// The returned close func releases the Redis client.
func (c *Config) OutboxRelay(db *gorm.DB, publisher bus.Publisher) (*outbox.Relay, func() error, error) {
	relayCfg := outbox.RelayConfig{
		PollInterval: c.Outbox.PollInterval,
		BatchSize:    c.Outbox.BatchSize,
		MaxAttempts:  c.Outbox.MaxAttempts,

		RetryBaseDelay: c.Outbox.RetryBaseDelay,
		RetryMaxDelay:  c.Outbox.RetryMaxDelay,
	}

	if c.Redis.URL != "" && c.Redis.LockTTL <= outbox.PublishTimeout {
		return nil, nil, fmt.Errorf("REDIS_LOCK_TTL %s must exceed the outbox publish timeout %s", c.Redis.LockTTL, outbox.PublishTimeout)
	}

	client, err := c.Redis.RedisClient()
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return outbox.NewRelay(db, publisher, relayCfg, nil), func() error { return nil }, nil
	}

	key := fmt.Sprintf("gymcore:outbox:%s", c.APP.ServiceName)
	l, err := lock.NewRedisLock(lock.NewRedisStore(client), key, c.Redis.LockTTL)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return outbox.NewRelay(db, publisher, relayCfg, l), client.Close, nil
}
