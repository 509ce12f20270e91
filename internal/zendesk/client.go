// Package zendesk is the transport to the external helpdesk. One
// synchronous attempt per submission; no retries — a failure is
// surfaced to the caller so the form can be re-rendered with the
// submitted values intact.
package zendesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathanglassman/paas-product-page/internal/ticket"
)

// TicketSender is what the form handlers depend on; satisfied by Client
// and by test doubles.
type TicketSender interface {
	CreateTicket(ctx context.Context, p ticket.Payload) error
}

type Client struct {
	baseURL    string
	user       string
	token      string
	dryRun     bool
	httpClient *http.Client
}

// NewClient returns a helpdesk client. With dryRun set, CreateTicket
// logs the payload and reports success without touching the network.
func NewClient(baseURL, user, token string, dryRun bool) *Client {
	return &Client{
		baseURL: baseURL,
		user:    user,
		token:   token,
		dryRun:  dryRun,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateTicket posts the payload to the helpdesk tickets endpoint.
func (c *Client) CreateTicket(ctx context.Context, p ticket.Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("zendesk: marshal ticket: %w", err)
	}
	if c.dryRun {
		log.Printf("zendesk: dry run, ticket not sent: %s", body)
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tickets", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("zendesk: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Zendesk API token auth: "<user>/token" as the basic-auth username.
	req.SetBasicAuth(c.user+"/token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zendesk: create ticket: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("zendesk: create ticket: status %d", resp.StatusCode)
	}
	return nil
}
