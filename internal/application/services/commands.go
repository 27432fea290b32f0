package services

type CreatePaymentMethodCommand struct {
	InterimCardKey string
	CardholderName string
	BillingAddress map[string]any
	IdempotencyKey string
}

type CreateOrderBatchCommand struct {
	PaymentMethodID string
	IdempotencyKey  string
}

type PaymentMethodResult struct {
	Message         string
	PaymentMethodID string
}

type OrderBatchResult struct {
	Message      string
	OrderBatchID string
	Data         map[string]any
}
