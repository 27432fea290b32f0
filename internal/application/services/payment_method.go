package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
)

const missingPaymentMethodID = "No payment method ID returned from Goody API"

type PaymentMethodService struct {
	providerClient application.ProviderClient
	endUserID      string
	logger         *slog.Logger
}

func NewPaymentMethodService(
	providerClient application.ProviderClient,
	providerCfg config.ProviderConfig,
	logger *slog.Logger,
) *PaymentMethodService {
	return &PaymentMethodService{
		providerClient: providerClient,
		endUserID:      providerCfg.EndUserID,
		logger:         logger,
	}
}

// CreatePaymentMethod registers a tokenized card with the provider for the configured end user.
func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, cmd CreatePaymentMethodCommand) (*PaymentMethodResult, error) {
	req := application.PaymentMethodRequest{
		InterimCardKey:    cmd.InterimCardKey,
		CardholderName:    cmd.CardholderName,
		BillingAddress:    cmd.BillingAddress,
		PaymentMethodType: application.PaymentMethodTypeCard,
		CommerceEndUserID: s.endUserID,
	}

	resource, err := s.providerClient.CreatePaymentMethod(ctx, req, cmd.IdempotencyKey)
	if err != nil {
		svcErr := application.TranslateError(err)
		s.logger.Warn("payment method creation failed",
			"code", svcErr.Code,
			"error", err,
		)
		return nil, svcErr
	}

	if resource.ID == "" {
		s.logger.Error("provider returned payment method without id")
		return nil, application.NewInternalError(missingPaymentMethodID, nil)
	}

	s.logger.Info("payment method created", "payment_method_id", resource.ID)

	return &PaymentMethodResult{
		Message:         fmt.Sprintf("Payment method created: %s", resource.ID),
		PaymentMethodID: resource.ID,
	}, nil
}
