package redis

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// CommentBroadcastRedis publishes payloads on Redis Pub/Sub channels. No
// delivery guarantee: subscribers not connected at publish time never see
// the message, which is exactly the contract the comment channel wants.
type CommentBroadcastRedis struct {
	Client *redis.Client
}

func NewCommentBroadcastRedis(client *redis.Client) *CommentBroadcastRedis {
	return &CommentBroadcastRedis{
		Client: client,
	}
}

func (b *CommentBroadcastRedis) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return b.Client.Publish(ctx, topic, data).Err()
}
