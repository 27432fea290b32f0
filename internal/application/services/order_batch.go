package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
)

const missingOrderBatchID = "No order batch ID returned from Goody API"

// OrderBatchService places a purchase with the provider. Every call creates a new
// order batch; nothing is deduplicated unless the caller supplies an idempotency key.
type OrderBatchService struct {
	providerClient application.ProviderClient
	endUserID      string
	order          config.OrderConfig
	logger         *slog.Logger
}

func NewOrderBatchService(
	providerClient application.ProviderClient,
	providerCfg config.ProviderConfig,
	orderCfg config.OrderConfig,
	logger *slog.Logger,
) *OrderBatchService {
	return &OrderBatchService{
		providerClient: providerClient,
		endUserID:      providerCfg.EndUserID,
		order:          orderCfg,
		logger:         logger,
	}
}

func (s *OrderBatchService) CreateOrderBatch(ctx context.Context, cmd CreateOrderBatchCommand) (*OrderBatchResult, error) {
	req := s.buildRequest(cmd.PaymentMethodID)

	resource, err := s.providerClient.CreateOrderBatch(ctx, req, cmd.IdempotencyKey)
	if err != nil {
		svcErr := application.TranslateError(err)
		s.logger.Warn("order batch creation failed",
			"code", svcErr.Code,
			"payment_method_id", cmd.PaymentMethodID,
			"error", err,
		)
		return nil, svcErr
	}

	if resource.ID == "" {
		s.logger.Error("provider returned order batch without id",
			"payment_method_id", cmd.PaymentMethodID,
		)
		return nil, application.NewInternalError(missingOrderBatchID, nil)
	}

	s.logger.Info("order batch created",
		"order_batch_id", resource.ID,
		"payment_method_id", cmd.PaymentMethodID,
	)

	return &OrderBatchResult{
		Message:      fmt.Sprintf("Order batch created: %s", resource.ID),
		OrderBatchID: resource.ID,
		Data:         resource.Body,
	}, nil
}

func (s *OrderBatchService) sendMethod() string {
	if s.order.SendMethod == "" {
		return application.SendMethodDirectSend
	}
	return s.order.SendMethod
}

func (s *OrderBatchService) buildRequest(paymentMethodID string) application.OrderBatchRequest {
	recipient := s.order.Recipient

	return application.OrderBatchRequest{
		FromName:          s.order.FromName,
		Message:           s.order.Message,
		SendMethod:        s.sendMethod(),
		CommerceEndUserID: s.endUserID,
		PaymentMethodID:   paymentMethodID,
		Recipients: []application.Recipient{
			{
				FirstName: recipient.FirstName,
				LastName:  recipient.LastName,
				MailingAddress: application.MailingAddress{
					Address1:   recipient.Address1,
					Address2:   recipient.Address2,
					City:       recipient.City,
					State:      recipient.State,
					PostalCode: recipient.PostalCode,
					Country:    recipient.Country,
				},
			},
		},
		Cart: application.Cart{
			Items: []application.CartItem{
				{ProductID: s.order.ProductID, Quantity: s.order.Quantity},
			},
		},
	}
}
