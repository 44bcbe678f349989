package config

import (
	"context"
	"fmt"

	"github.com/gymcore/gymcore/pkg/bus"
	"github.com/gymcore/gymcore/pkg/bus/kafka"
	"github.com/gymcore/gymcore/pkg/bus/memory"
	"github.com/gymcore/gymcore/pkg/bus/rabbitmq"
	"github.com/redis/go-redis/v9"
)

// ConnectBus opens the configured bus driver within BUS_CONNECT_TIMEOUT.
func (c *Config) ConnectBus(ctx context.Context) (bus.Bus, error) {
	switch c.Bus.Driver {
	case "amqp", "rabbitmq", "":
		b, err := rabbitmq.Connect(ctx, rabbitmq.Config{
			URL:                c.Bus.URL,
			Exchange:           c.Bus.Exchange,
			DeadLetterExchange: c.Bus.DeadLetterExchange,
			ServiceName:        c.APP.ServiceName,
			Prefetch:           c.Bus.Prefetch,
			ConnectTimeout:     c.Bus.ConnectTimeout,
			Retry:              c.Bus.GetRetryConfig(),
		})
		if err != nil {
			return nil, err
		}
		return b, nil
	case "kafka":
		b, err := kafka.Connect(ctx, kafka.Config{
			Brokers:        c.Bus.Brokers(),
			ServiceName:    c.APP.ServiceName,
			ConnectTimeout: c.Bus.ConnectTimeout,
			Retry:          c.Bus.GetRetryConfig(),
		})
		if err != nil {
			return nil, err
		}
		return b, nil
	case "memory":
		return memory.New(c.Bus.GetRetryConfig()), nil
	default:
		return nil, fmt.Errorf("unsupported bus driver %q", c.Bus.Driver)
	}
}

// RedisClient returns a client for REDIS_URL, or nil when no URL is configured.
func (r Redis) RedisClient() (*redis.Client, error) {
	if r.URL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(r.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}
