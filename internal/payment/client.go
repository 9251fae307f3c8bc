// Package payment looks up transfers recorded by the payment protocol.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stpnv0/StayEscrow/internal/domain"
)

type Config struct {
	BaseURL string
	AppID   string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	appID   string
	apiKey  string
	client  *http.Client
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://developer.worldcoin.org"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appID:   cfg.AppID,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Configured reports whether lookups can be made at all.
func (c *Client) Configured() bool {
	return c.appID != "" && c.apiKey != ""
}

func (c *Client) Transaction(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("%w: payment credentials are not configured", domain.ErrVerifierUnavailable)
	}

	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("type", "payment")
	reqURL := fmt.Sprintf("%s/api/v2/minikit/transaction/%s?%s", c.baseURL, url.PathEscape(transactionID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVerifierUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("transaction %s: %w", transactionID, domain.ErrPaymentRejected)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrVerifierUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tx domain.PaymentTransaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrVerifierUnavailable, err)
	}
	return &tx, nil
}
