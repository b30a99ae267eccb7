package tracking

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisPublisher publishes events as JSON on a Redis pub/sub channel
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     logrus.FieldLogger
}

// NewRedisPublisher creates a publisher for channel
func NewRedisPublisher(client *redis.Client, channel string, log logrus.FieldLogger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel, log: log}
}

func (p *RedisPublisher) Emit(ctx context.Context, e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		p.log.WithError(err).WithField("event", e.Name).Warn("Failed to encode tracking event")
		return
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.WithError(err).WithField("event", e.Name).Warn("Failed to publish tracking event")
	}
}
