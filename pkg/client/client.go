package client

import (
	"context"

	"dandee/pkg/logger"

	stripeclient "github.com/stripe/stripe-go/v82/client"
	"go.mongodb.org/mongo-driver/mongo"
)

// Client holds the process-wide external-service handles. Each is built once
// at startup and stays nil when its configuration is absent; handlers treat a
// nil handle as "service unavailable".
type Client struct {
	Mongo  *mongo.Client
	Stripe *stripeclient.API
}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) GracefulShutdown(log *logger.Logger) {
	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(context.Background()); err != nil {
			log.Error("Failed to disconnect MongoDB client", "error", err)
		}
	}
}
