// Package ledger bridges the platform to the on-chain transfer service.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"guild-wager-platform/pkg/apperror"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.LedgerClient against the ledger service's HTTP API.
// Transfers are never retried here: a timed-out SendFunds may or may not have
// landed on chain, and the caller decides how to reconcile.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a ledger client. A nil httpClient gets a default with the
// given timeout (zero means 10s).
func NewClient(baseURL, apiKey string, timeout time.Duration, httpClient HTTPClient, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

type transferRequest struct {
	Secret    string  `json:"secret"`
	ToAddress string  `json:"to_address"`
	Amount    float64 `json:"amount"`
}

type transferResponse struct {
	Success   bool   `json:"success"`
	Signature string `json:"signature"`
	Error     string `json:"error"`
}

// SendFunds moves amount from the wallet controlled by secret to toAddress.
// The secret crosses this call in plaintext, so the request only ever targets
// the loopback or private-network ledger endpoint.
func (c *Client) SendFunds(ctx context.Context, secret, toAddress string, amount float64) (string, error) {
	payload, err := json.Marshal(transferRequest{
		Secret:    secret,
		ToAddress: toAddress,
		Amount:    amount,
	})
	if err != nil {
		return "", fmt.Errorf("encoding transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/transfer", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("posting transfer: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading transfer response: %w", err)
	}

	var result transferResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decoding transfer response (status %d): %w", resp.StatusCode, err)
	}
	if !result.Success {
		if result.Error == "" {
			result.Error = fmt.Sprintf("transfer failed with status %d", resp.StatusCode)
		}
		return "", apperror.ErrPaymentFailed(errors.New(result.Error))
	}

	c.log.Info().
		Str("to_address", toAddress).
		Float64("amount", amount).
		Str("signature", result.Signature).
		Msg("transfer confirmed")
	return result.Signature, nil
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

// GetBalance reads the native-asset balance of an address.
func (c *Client) GetBalance(ctx context.Context, address string) (float64, error) {
	var result balanceResponse
	if err := c.getJSON(ctx, "/api/v1/balance/"+url.PathEscape(address), &result); err != nil {
		return 0, err
	}
	return result.Balance, nil
}

type priceResponse struct {
	Price *float64 `json:"price"`
}

// GetAssetPrice returns the current USD price of the native asset, or nil
// when the price feed has nothing to report.
func (c *Client) GetAssetPrice(ctx context.Context) (*float64, error) {
	var result priceResponse
	if err := c.getJSON(ctx, "/api/v1/price", &result); err != nil {
		return nil, err
	}
	return result.Price, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building ledger request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ledger request %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ledger request %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding ledger response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
