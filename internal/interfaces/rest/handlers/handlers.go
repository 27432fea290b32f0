package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application/services"
	"github.com/go-playground/validator"
)

// IdempotencyKeyHeader is forwarded to the provider when the caller sets it.
const IdempotencyKeyHeader = "Idempotency-Key"

type PaymentMethodCreator interface {
	CreatePaymentMethod(ctx context.Context, cmd services.CreatePaymentMethodCommand) (*services.PaymentMethodResult, error)
}

type OrderBatchCreator interface {
	CreateOrderBatch(ctx context.Context, cmd services.CreateOrderBatchCommand) (*services.OrderBatchResult, error)
}

// Handlers serves the relay endpoints.
type Handlers struct {
	paymentMethods PaymentMethodCreator
	orderBatches   OrderBatchCreator
	validate       *validator.Validate
	logger         *slog.Logger
}

func NewHandlers(
	paymentMethods PaymentMethodCreator,
	orderBatches OrderBatchCreator,
	logger *slog.Logger,
) *Handlers {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handlers{
		paymentMethods: paymentMethods,
		orderBatches:   orderBatches,
		validate:       validate,
		logger:         logger,
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /create_goody_payment_method", h.CreatePaymentMethod)
	mux.HandleFunc("POST /create_goody_order_batch", h.CreateOrderBatch)
	mux.HandleFunc("GET /health", h.Health)
}

// validateRequest reports the first failing field in a caller-readable form.
func (h *Handlers) validateRequest(req any) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("field %q is required", fe.Field())
	default:
		return fmt.Errorf("field %q failed the %q check", fe.Field(), fe.Tag())
	}
}
