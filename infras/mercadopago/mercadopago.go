package mercadopago

//go:generate go run go.uber.org/mock/mockgen -source=./mercadopago.go -destination=./mocks/mercadopago_mock.go -package=mocks

import (
	"context"
	"fmt"

	"fauget/config"
	"fauget/infras/otel"
	"fauget/shared/constant"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrPreferenceID = "preference_id"
	otelAttrTitle        = "title"
)

// CheckoutRequest describes a single-item checkout preference.
type CheckoutRequest struct {
	Title       string
	Description string
	Quantity    int
	UnitPrice   float64
	ExternalRef string
	PayerEmail  string
}

// CheckoutResult carries the aggregator's redirect URL and preference id.
type CheckoutResult struct {
	PaymentURL   string
	PreferenceID string
}

// Checkout creates payment preferences against the Mercado Pago API.
type Checkout interface {
	CreatePreference(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

type checkoutImpl struct {
	client preference.Client
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Checkout {
	mpCfg, err := mpconfig.New(cfg.External.MercadoPago.AccessToken)
	if err != nil {
		log.Err(err).Msg("Error initializing Mercado Pago configuration")
	}

	var client preference.Client
	if mpCfg != nil {
		client = preference.NewClient(mpCfg)
	}

	return &checkoutImpl{
		client: client,
		config: cfg,
		otel:   ot,
	}
}

func (c *checkoutImpl) CreatePreference(ctx context.Context, req CheckoutRequest) (result *CheckoutResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mercadopago.CreatePreference")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrTitle, req.Title)

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	request := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       req.Title,
				Description: req.Description,
				Quantity:    quantity,
				UnitPrice:   req.UnitPrice,
			},
		},
		ExternalReference: req.ExternalRef,
		BackURLs: &preference.BackURLsRequest{
			Success: c.config.External.MercadoPago.SuccessURL,
			Failure: c.config.External.MercadoPago.FailureURL,
			Pending: c.config.External.MercadoPago.PendingURL,
		},
		AutoReturn: "approved",
	}

	if req.PayerEmail != "" {
		request.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	resource, err := c.client.Create(ctx, request)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("failed to create Mercado Pago preference")

		return nil, fmt.Errorf("failed to create checkout preference: %w", err)
	}

	scope.SetAttribute(otelAttrPreferenceID, resource.ID)

	return &CheckoutResult{
		PaymentURL:   resource.InitPoint,
		PreferenceID: resource.ID,
	}, nil
}
