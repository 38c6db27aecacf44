package apiclient

import (
	"vitalscope.com/vra/logger"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"io"
	"io/ioutil"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

var clientLogger = logger.NewLogger("APIClient")

type Config struct {
	APIKey      string `envconfig:"VRA_API_KEY" required:"true"`
	BaseURL     string `envconfig:"VRA_API_BASE_URL" default:"https://assessment.ksensetech.com/api"`
	MaxAttempts int    `envconfig:"VRA_API_RETRY_COUNT_MAX" default:"5"`
	PageLimit   int    `envconfig:"VRA_API_PAGE_LIMIT" default:"20"`
}

// Client talks to the assessment service through a single retrying
// transport shared by the list and submission endpoints.
type Client struct {
	config      Config
	httpClient  *http.Client
	backoffBase time.Duration
	jitterBound time.Duration
}

func New() (*Client, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		clientLogger.Err(err).Msg("Failed to read environment")
		return nil, err
	}
	return NewWithConfig(config), nil
}

func NewWithConfig(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		backoffBase: time.Second,
		jitterBound: 500 * time.Millisecond,
	}
}

// RequestError is a terminal request failure: the final HTTP status and
// the best-effort decoded error detail.
type RequestError struct {
	StatusCode int
	Message    string
}

func (requestErr *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", requestErr.StatusCode, requestErr.Message)
}

// Whether a failure is worth retrying is decided by status code alone.
// Transport-level failures carry no status and are always retried.
func retryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	}
	return false
}

// request performs one authenticated JSON call with exponential backoff.
// The attempt counter is shared across HTTP-level and transport-level
// failures; a non-retryable status aborts immediately.
func (client *Client) request(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	if client.config.APIKey == "" {
		return nil, errors.New("api key must not be empty")
	}
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = encoded
	}

	var lastErr error
	for attempt := 0; attempt < client.config.MaxAttempts; attempt++ {
		data, retryable, err := client.attempt(ctx, method, endpoint, payload)
		if err == nil {
			return data, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
		if attempt == client.config.MaxAttempts-1 {
			break
		}
		delay := client.backoffDelay(attempt)
		clientLogger.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("delay", delay).
			Str("endpoint", endpoint).
			Msg("Retryable request failure, backing off")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	if lastErr == nil {
		lastErr = errors.New("retries exhausted")
	}
	return nil, lastErr
}

func (client *Client) attempt(ctx context.Context, method, endpoint string, payload []byte) (data []byte, retryable bool, err error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, client.config.BaseURL+endpoint, reqBody)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("x-api-key", client.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		// no status available, treat as transient
		return nil, true, err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, false, nil
	}
	requestErr := &RequestError{
		StatusCode: resp.StatusCode,
		Message:    decodeErrorDetail(respBody, resp.StatusCode),
	}
	return nil, retryableStatus(resp.StatusCode), requestErr
}

// decodeErrorDetail pulls an error/message field out of a JSON error
// body when there is one, otherwise falls back to the raw body.
func decodeErrorDetail(body []byte, statusCode int) string {
	var detail struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		if detail.Error != "" {
			return detail.Error
		}
		if detail.Message != "" {
			return detail.Message
		}
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed != "" {
		return trimmed
	}
	return http.StatusText(statusCode)
}

// backoffDelay is 2^attempt seconds plus up to half a second of jitter.
func (client *Client) backoffDelay(attempt int) time.Duration {
	delay := client.backoffBase << uint(attempt)
	if client.jitterBound > 0 {
		delay += time.Duration(rand.Int63n(int64(client.jitterBound)))
	}
	return delay
}
