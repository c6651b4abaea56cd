package cache

import (
	"context"
	"encoding/json"

	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/event"
	"github.com/go-redis/redis/v8"
)

type redisEventPublisher struct {
	redis *redis.Client
}

func NewRedisEventPublisher(redisClient *redis.Client) EventPublisher {
	return &redisEventPublisher{redis: redisClient}
}

func (p *redisEventPublisher) Publish(ctx context.Context, ch channel.Channel, ev event.Event) error {
	data, err := encodeMessage(ev)
	if err != nil {
		return err
	}
	return p.redis.Publish(ctx, string(ch), data).Err()
}

func encodeMessage(ev event.Event) ([]byte, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return json.Marshal(RedisMessage{
		Type:  ev.Type(),
		Event: b,
	})
}
