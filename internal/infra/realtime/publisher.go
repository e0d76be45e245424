// Package realtime publishes mutation events on Redis pub/sub channels that
// the web clients subscribe to through the relay. Publishing is
// fire-and-forget: a lost event only delays a UI refresh.
package realtime

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var publishTimeout = 5 * time.Second

type Message struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

type Publisher struct {
	Client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{Client: client}
}

func (p *Publisher) Publish(channel string, event string, payload any) {
	message, err := json.Marshal(Message{
		Event:   event,
		Payload: payload,
		At:      time.Now().UTC(),
	})
	if err != nil {
		log.Printf("realtime: failed to marshal %s event: %v", event, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.Client.Publish(ctx, channel, message).Err(); err != nil {
		log.Printf("realtime: failed to publish %s on %s: %v", event, channel, err)
	}
}
