package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/onton-live/nft-minter/internal/domain"
)

// Client defines access to the order gateway
//
//go:generate mockgen -source=client.go -destination=../../mocks/orders.go -package=mocks -mock_names=Client=MockOrdersClient
type Client interface {
	// GetOrder retrieves an order; domain.ErrOrderNotFound when the gateway
	// answers 404
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	// UpdateOrder applies a state patch to an order
	UpdateOrder(ctx context.Context, orderID string, patch domain.OrderPatch) error
}

type client struct {
	http *resty.Client
}

// NewClient creates an order gateway client
func NewClient(baseURL string, apiKey string, timeout time.Duration) Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("x-api-key", apiKey).
		SetHeader("Accept", "application/json")

	return &client{http: httpClient}
}

// GetOrder retrieves an order from the gateway
func (c *client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&order).
		Get("/order/" + url.PathEscape(orderID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("order gateway returned %d for order %s: %s",
			resp.StatusCode(), orderID, resp.String())
	}

	return &order, nil
}

// UpdateOrder applies a state patch to an order
func (c *client) UpdateOrder(ctx context.Context, orderID string, patch domain.OrderPatch) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/order/" + url.PathEscape(orderID))
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("order %s: %w", orderID, domain.ErrOrderNotFound)
	}
	if resp.IsError() {
		return fmt.Errorf("order gateway returned %d updating order %s: %s",
			resp.StatusCode(), orderID, resp.String())
	}

	return nil
}
