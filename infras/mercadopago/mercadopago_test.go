package mercadopago

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"

	"fauget/config"
	"fauget/infras/otel/mocks"
)

type stubPreferenceClient struct {
	lastRequest preference.Request
	response    *preference.Response
	err         error
}

func (s *stubPreferenceClient) Create(_ context.Context, request preference.Request) (*preference.Response, error) {
	s.lastRequest = request

	return s.response, s.err
}

func (s *stubPreferenceClient) Get(context.Context, string) (*preference.Response, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPreferenceClient) Update(context.Context, string, preference.Request) (*preference.Response, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPreferenceClient) Search(context.Context, preference.SearchRequest) (*preference.PagingResponse, error) {
	return nil, errors.New("not implemented")
}

func newCheckout(stub *stubPreferenceClient) Checkout {
	cfg := &config.Config{}
	cfg.External.MercadoPago.SuccessURL = "https://gym.test/payments/success"
	cfg.External.MercadoPago.FailureURL = "https://gym.test/payments/failure"
	cfg.External.MercadoPago.PendingURL = "https://gym.test/payments/pending"

	return &checkoutImpl{
		client: stub,
		config: cfg,
		otel:   mocks.NewOtel(),
	}
}

func TestCheckout_CreatePreference(t *testing.T) {
	t.Run("builds a single item preference", func(t *testing.T) {
		stub := &stubPreferenceClient{
			response: &preference.Response{
				ID:        "pref-id-1",
				InitPoint: "https://mercadopago.test/init",
			},
		}
		checkout := newCheckout(stub)

		result, err := checkout.CreatePreference(context.Background(), CheckoutRequest{
			Title:       "Plan Classic",
			Description: "Monthly gym membership",
			UnitPrice:   30000,
			ExternalRef: "payment-id-1",
			PayerEmail:  "member@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://mercadopago.test/init", result.PaymentURL)
		assert.Equal(t, "pref-id-1", result.PreferenceID)

		assert.Len(t, stub.lastRequest.Items, 1)
		item := stub.lastRequest.Items[0]
		assert.Equal(t, "Plan Classic", item.Title)
		assert.Equal(t, float64(30000), item.UnitPrice)
		assert.Equal(t, 1, item.Quantity)

		assert.Equal(t, "payment-id-1", stub.lastRequest.ExternalReference)
		assert.Equal(t, "approved", stub.lastRequest.AutoReturn)
		assert.Equal(t, "https://gym.test/payments/success", stub.lastRequest.BackURLs.Success)
		assert.Equal(t, "member@example.com", stub.lastRequest.Payer.Email)
	})

	t.Run("omits payer when email is empty", func(t *testing.T) {
		stub := &stubPreferenceClient{response: &preference.Response{ID: "pref-id-2"}}
		checkout := newCheckout(stub)

		_, err := checkout.CreatePreference(context.Background(), CheckoutRequest{
			Title:     "Plan Online",
			UnitPrice: 50000,
			Quantity:  1,
		})

		assert.NoError(t, err)
		assert.Nil(t, stub.lastRequest.Payer)
	})

	t.Run("gateway error is wrapped", func(t *testing.T) {
		stub := &stubPreferenceClient{err: errors.New("gateway unavailable")}
		checkout := newCheckout(stub)

		_, err := checkout.CreatePreference(context.Background(), CheckoutRequest{
			Title:     "Plan Premium",
			UnitPrice: 50000,
		})

		assert.Error(t, err)
	})
}
