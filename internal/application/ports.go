package application

import (
	"context"
)

// ProviderClient is the port for the external commerce provider.
// idempotencyKey is forwarded as-is and may be empty.
type ProviderClient interface {
	CreatePaymentMethod(ctx context.Context, req PaymentMethodRequest, idempotencyKey string) (*ProviderResource, error)
	CreateOrderBatch(ctx context.Context, req OrderBatchRequest, idempotencyKey string) (*ProviderResource, error)
}
