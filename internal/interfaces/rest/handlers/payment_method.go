package handlers

import (
	"net/http"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/application/services"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest"
)

type CreatePaymentMethodRequest struct {
	InterimCardKey string         `json:"interim_card_key" validate:"required" example:"ick_1234"`
	CardholderName string         `json:"cardholder_name" validate:"required" example:"Jane Doe"`
	BillingAddress map[string]any `json:"billing_address" validate:"required" swaggertype:"object"`
}

type PaymentMethodResponse struct {
	Message         string `json:"message" example:"Payment method created: pm_abc123"`
	PaymentMethodID string `json:"payment_method_id" example:"pm_abc123"`
}

// CreatePaymentMethod godoc
//
//	@Summary		Create a payment method
//	@Description	Registers a tokenized card with the provider for the configured end user.
//	@Tags			payment-methods
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string						false	"Forwarded to the provider unchanged"
//	@Param			request			body		CreatePaymentMethodRequest	true	"Tokenized card"
//	@Success		200				{object}	PaymentMethodResponse
//	@Failure		400				{object}	rest.ErrorResponse
//	@Failure		422				{object}	rest.ErrorResponse
//	@Failure		500				{object}	rest.InternalErrorResponse
//	@Failure		502				{object}	rest.ErrorResponse
//	@Failure		504				{object}	rest.ErrorResponse
//	@Router			/create_goody_payment_method [post]
func (h *Handlers) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentMethodRequest
	if err := rest.ReadJSON(w, r, &req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	if err := h.validateRequest(req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	result, err := h.paymentMethods.CreatePaymentMethod(r.Context(), services.CreatePaymentMethodCommand{
		InterimCardKey: req.InterimCardKey,
		CardholderName: req.CardholderName,
		BillingAddress: req.BillingAddress,
		IdempotencyKey: r.Header.Get(IdempotencyKeyHeader),
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, PaymentMethodResponse{
		Message:         result.Message,
		PaymentMethodID: result.PaymentMethodID,
	})
}
