package handlers

import (
	"net/http"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/application/services"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest"
)

type CreateOrderBatchRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required" example:"pm_abc123"`
}

type OrderBatchResponse struct {
	Message      string         `json:"message" example:"Order batch created: ob_999"`
	OrderBatchID string         `json:"order_batch_id" example:"ob_999"`
	Data         map[string]any `json:"data" swaggertype:"object"`
}

// CreateOrderBatch godoc
//
//	@Summary		Create an order batch
//	@Description	Places the configured order with a previously created payment method. Never retried.
//	@Tags			order-batches
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string					false	"Forwarded to the provider unchanged"
//	@Param			request			body		CreateOrderBatchRequest	true	"Payment method to charge"
//	@Success		200				{object}	OrderBatchResponse
//	@Failure		400				{object}	rest.ErrorResponse
//	@Failure		422				{object}	rest.ErrorResponse
//	@Failure		500				{object}	rest.InternalErrorResponse
//	@Failure		502				{object}	rest.ErrorResponse
//	@Failure		504				{object}	rest.ErrorResponse
//	@Router			/create_goody_order_batch [post]
func (h *Handlers) CreateOrderBatch(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderBatchRequest
	if err := rest.ReadJSON(w, r, &req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	if err := h.validateRequest(req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	result, err := h.orderBatches.CreateOrderBatch(r.Context(), services.CreateOrderBatchCommand{
		PaymentMethodID: req.PaymentMethodID,
		IdempotencyKey:  r.Header.Get(IdempotencyKeyHeader),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, OrderBatchResponse{
		Message:      result.Message,
		OrderBatchID: result.OrderBatchID,
		Data:         result.Data,
	})
}
