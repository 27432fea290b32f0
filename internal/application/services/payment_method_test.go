package services_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/application/mocks"
	"github.com/DanielPopoola/goody-commerce-relay/internal/application/services"
	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type PaymentMethodServiceTestSuite struct {
	suite.Suite
	mockProvider *mocks.MockProviderClient
	service      *services.PaymentMethodService
}

func TestPaymentMethodServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentMethodServiceTestSuite))
}

// SetupTest runs before each test
func (suite *PaymentMethodServiceTestSuite) SetupTest() {
	suite.mockProvider = mocks.NewMockProviderClient(suite.T())
	suite.service = services.NewPaymentMethodService(
		suite.mockProvider,
		config.ProviderConfig{EndUserID: "123"},
		discardLogger(),
	)
}

func (suite *PaymentMethodServiceTestSuite) command() services.CreatePaymentMethodCommand {
	return services.CreatePaymentMethodCommand{
		InterimCardKey: "tok_1",
		CardholderName: "Jane Doe",
		BillingAddress: map[string]any{
			"address_1":   "185 Berry St",
			"city":        "San Francisco",
			"state":       "CA",
			"postal_code": "94107",
			"country":     "US",
		},
	}
}

func (suite *PaymentMethodServiceTestSuite) TestCreatePaymentMethod_Success() {
	cmd := suite.command()
	expectedReq := application.PaymentMethodRequest{
		InterimCardKey:    "tok_1",
		CardholderName:    "Jane Doe",
		BillingAddress:    cmd.BillingAddress,
		PaymentMethodType: "card",
		CommerceEndUserID: "123",
	}

	suite.mockProvider.EXPECT().
		CreatePaymentMethod(mock.Anything, expectedReq, "").
		Return(&application.ProviderResource{ID: "pm_abc123", Body: map[string]any{"id": "pm_abc123"}}, nil).
		Once()

	result, err := suite.service.CreatePaymentMethod(context.Background(), cmd)

	suite.Require().NoError(err)
	suite.Equal("Payment method created: pm_abc123", result.Message)
	suite.Equal("pm_abc123", result.PaymentMethodID)
}

func (suite *PaymentMethodServiceTestSuite) TestCreatePaymentMethod_ForwardsIdempotencyKey() {
	cmd := suite.command()
	cmd.IdempotencyKey = "idem-key"

	suite.mockProvider.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.AnythingOfType("application.PaymentMethodRequest"), "idem-key").
		Return(&application.ProviderResource{ID: "pm_1"}, nil).
		Once()

	_, err := suite.service.CreatePaymentMethod(context.Background(), cmd)

	suite.Require().NoError(err)
}

func (suite *PaymentMethodServiceTestSuite) TestCreatePaymentMethod_MissingID() {
	suite.mockProvider.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.Anything, mock.Anything).
		Return(&application.ProviderResource{Body: map[string]any{}}, nil).
		Once()

	result, err := suite.service.CreatePaymentMethod(context.Background(), suite.command())

	suite.Nil(result)
	svcErr, ok := application.IsServiceError(err)
	suite.Require().True(ok)
	suite.Equal(application.ErrCodeInternal, svcErr.Code)
	suite.Equal(http.StatusInternalServerError, svcErr.HTTPStatus)
	suite.Equal("No payment method ID returned from Goody API", svcErr.Message)
}

func (suite *PaymentMethodServiceTestSuite) TestCreatePaymentMethod_ProviderRejection() {
	suite.mockProvider.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &application.ProviderError{StatusCode: 400, Body: `{"error":"Card declined"}`}).
		Once()

	result, err := suite.service.CreatePaymentMethod(context.Background(), suite.command())

	suite.Nil(result)
	svcErr, ok := application.IsServiceError(err)
	suite.Require().True(ok)
	suite.Equal(application.ErrCodeProviderRejected, svcErr.Code)
	suite.Equal(http.StatusBadRequest, svcErr.HTTPStatus)
	suite.Equal("Card declined", svcErr.Message)
}

func (suite *PaymentMethodServiceTestSuite) TestCreatePaymentMethod_ProviderTimeout() {
	suite.mockProvider.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, application.ErrProviderTimeout).
		Once()

	_, err := suite.service.CreatePaymentMethod(context.Background(), suite.command())

	svcErr, ok := application.IsServiceError(err)
	suite.Require().True(ok)
	suite.Equal(application.ErrCodeUpstreamTimeout, svcErr.Code)
	suite.ErrorIs(err, application.ErrProviderTimeout)
}
