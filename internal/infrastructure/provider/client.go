package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
)

const (
	paymentMethodsPath = "/v1/commerce_user_payment_methods"
	orderBatchesPath   = "/v1/order_batches"

	// maxBodyBytes caps how much of a provider response is buffered.
	maxBodyBytes = 1 << 20
)

type HTTPProviderClient struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func NewProviderClient(cfg config.ProviderConfig, logger *slog.Logger) *HTTPProviderClient {
	return &HTTPProviderClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

var _ application.ProviderClient = (*HTTPProviderClient)(nil)

func (c *HTTPProviderClient) CreatePaymentMethod(ctx context.Context, req application.PaymentMethodRequest, idempotencyKey string) (*application.ProviderResource, error) {
	return sendRequest(c, ctx, http.MethodPost, paymentMethodsPath, &req, idempotencyKey)
}

func (c *HTTPProviderClient) CreateOrderBatch(ctx context.Context, req application.OrderBatchRequest, idempotencyKey string) (*application.ProviderResource, error) {
	return sendRequest(c, ctx, http.MethodPost, orderBatchesPath, &req, idempotencyKey)
}

// sendRequest performs one provider call. Only 201 counts as success; any other status
// is returned as *application.ProviderError carrying the raw body.
func sendRequest[Req any](c *HTTPProviderClient, ctx context.Context, method, path string, reqBody *Req, idempotencyKey string) (*application.ProviderResource, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	// The call outlives a disconnecting caller; only the provider timeout bounds it.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("provider request failed",
			"method", method,
			"path", path,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransportError(err)
	}

	c.logger.Info("provider request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode != http.StatusCreated {
		return nil, &application.ProviderError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return decodeResource(body)
}

func decodeResource(body []byte) (*application.ProviderResource, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", application.ErrMalformedResponse, err)
	}
	if data == nil {
		return nil, fmt.Errorf("%w: empty body", application.ErrMalformedResponse)
	}

	resource := &application.ProviderResource{Body: data}
	switch id := data["id"].(type) {
	case string:
		resource.ID = id
	case json.Number:
		// A zero id is treated like a missing one.
		if f, err := id.Float64(); err != nil || f != 0 {
			resource.ID = id.String()
		}
	}

	return resource, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", application.ErrProviderTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", application.ErrProviderTimeout, err)
	}

	return fmt.Errorf("%w: %w", application.ErrProviderUnavailable, err)
}
