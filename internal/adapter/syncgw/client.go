// Package syncgw implements the agent-side client for the internal wallet
// and event sync channel between the agent and the ledger service.
package syncgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"guild-wager-platform/internal/core/ports"

	"github.com/rs/zerolog"
)

const headerInternalSecret = "x-internal-secret"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.SyncClient over the internal HTTP surface.
// Pulls retry once on 5xx or network failure with a short backoff; pushes
// are fire-and-forget best-effort, because the reconciler re-derives correct
// state on the next pull regardless.
type Client struct {
	baseURL    string
	secret     string
	httpClient HTTPClient
	backoff    time.Duration
	log        zerolog.Logger
}

// NewClient creates a sync gateway client. A nil httpClient gets a default
// with the given timeout (zero means 5s).
func NewClient(baseURL, secret string, timeout time.Duration, httpClient HTTPClient, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    baseURL,
		secret:     secret,
		httpClient: httpClient,
		backoff:    250 * time.Millisecond,
		log:        log,
	}
}

type walletEnvelope struct {
	Wallet *ports.RemoteWallet `json:"wallet"`
}

// FetchGuildWallet pulls the authoritative treasury wallet for a guild.
// A nil result with a nil error means the remote reachably reports no
// wallet; an error means the remote was unreachable.
func (c *Client) FetchGuildWallet(ctx context.Context, guildID string) (*ports.RemoteWallet, error) {
	return c.fetchWallet(ctx, "/internal/guild-wallet/"+guildID)
}

// FetchUserWallet pulls a bettor's wallet with the same semantics.
func (c *Client) FetchUserWallet(ctx context.Context, userID string) (*ports.RemoteWallet, error) {
	return c.fetchWallet(ctx, "/internal/user-wallet/"+userID)
}

func (c *Client) fetchWallet(ctx context.Context, path string) (*ports.RemoteWallet, error) {
	body, err := c.getWithRetry(ctx, path)
	if err != nil {
		return nil, err
	}

	var envelope walletEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding wallet response: %w", err)
	}
	return envelope.Wallet, nil
}

// PushGuildWallet best-effort publishes a wallet to the remote. The secret
// inside must already be transit-wrapped by the caller.
func (c *Client) PushGuildWallet(ctx context.Context, wallet ports.RemoteWallet) {
	if err := c.post(ctx, "/internal/guild-wallet-sync", wallet); err != nil {
		c.log.Warn().Err(err).Str("owner_id", wallet.OwnerID).Msg("guild wallet push failed")
	}
}

// PushEventUpdate best-effort publishes an event state change to the remote.
func (c *Client) PushEventUpdate(ctx context.Context, update ports.EventSync) {
	if err := c.post(ctx, "/internal/wager-event-sync", update); err != nil {
		c.log.Warn().Err(err).
			Str("event_id", update.EventID.String()).
			Str("action", string(update.Action)).
			Msg("event update push failed")
	}
}

// getWithRetry performs a GET, retrying once after a short backoff on a 5xx
// response or a transport error. 4xx responses are not retried.
func (c *Client) getWithRetry(ctx context.Context, path string) ([]byte, error) {
	body, retryable, err := c.get(ctx, path)
	if err == nil || !retryable {
		return body, err
	}

	c.log.Debug().Err(err).Str("path", path).Msg("sync pull failed, retrying once")
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.backoff):
	}

	body, _, err = c.get(ctx, path)
	return body, err
}

func (c *Client) get(ctx context.Context, path string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building sync request: %w", err)
	}
	req.Header.Set(headerInternalSecret, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("sync pull %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading sync response: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("sync pull %s: status %d", path, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("sync pull %s: status %d", path, resp.StatusCode)
	}
	return body, false, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerInternalSecret, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sync push %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sync push %s: status %d", path, resp.StatusCode)
	}
	return nil
}
