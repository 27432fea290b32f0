package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to a running relay
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 40 * time.Second,
		},
	}
}

// Response is a decoded relay reply
type Response struct {
	StatusCode int
	Header     http.Header
	Body       map[string]any
}

// CreatePaymentMethod calls /create_goody_payment_method with a fresh idempotency key
func (c *TestClient) CreatePaymentMethod(t *testing.T, body map[string]any) *Response {
	return c.post(t, "/create_goody_payment_method", body, map[string]string{
		"Idempotency-Key": "e2e-pm-" + uuid.New().String(),
	})
}

// CreateOrderBatch calls /create_goody_order_batch
func (c *TestClient) CreateOrderBatch(t *testing.T, paymentMethodID string) *Response {
	return c.post(t, "/create_goody_order_batch", map[string]any{
		"payment_method_id": paymentMethodID,
	}, nil)
}

// Raw sends an arbitrary request, e.g. malformed bodies or foreign origins
func (c *TestClient) Raw(t *testing.T, method, path string, body []byte, headers map[string]string) *Response {
	t.Helper()

	httpReq, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := &Response{StatusCode: resp.StatusCode, Header: resp.Header}
	if len(bodyBytes) > 0 {
		require.NoError(t, json.Unmarshal(bodyBytes, &result.Body), "body: %s", bodyBytes)
	}
	return result
}

func (c *TestClient) post(t *testing.T, path string, body map[string]any, headers map[string]string) *Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return c.Raw(t, http.MethodPost, path, raw, headers)
}
