package client

import (
	"dandee/pkg/logger"

	stripeclient "github.com/stripe/stripe-go/v82/client"
)

func (c *Client) SetStripe(log *logger.Logger, secretKey string) {
	api := &stripeclient.API{}
	api.Init(secretKey, nil)

	log.Info("Stripe client initialized")
	c.Stripe = api
}
