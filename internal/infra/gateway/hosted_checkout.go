// Package gateway contains the HTTP client for the hosted-checkout payment
// provider. The provider exchanges a session-creation request for an opaque
// session reference and a hosted payment page URL; card data never touches
// this service.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"gemmarket/config"
	"gemmarket/internal/domain/entity"
	"gemmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

// sessionRequest is the provider's session-creation payload.
type sessionRequest struct {
	Method  string         `json:"method"`
	Store   string         `json:"store"`
	AuthKey string         `json:"authkey"`
	Order   sessionOrder   `json:"order"`
	Return  sessionReturns `json:"return"`
}

type sessionOrder struct {
	CartID      string           `json:"cartid"`
	Test        int              `json:"test"`
	Amount      string           `json:"amount"`
	Currency    string           `json:"currency"`
	Description string           `json:"description"`
	Items       []sessionOrderItem `json:"items"`
}

type sessionOrderItem struct {
	Description string `json:"description"`
	UnitAmount  int64  `json:"unit_amount"`
	Quantity    int64  `json:"quantity"`
}

type sessionReturns struct {
	Authorised string `json:"authorised"`
	Declined   string `json:"declined"`
	Cancelled  string `json:"cancelled"`
}

// sessionResponse is the provider's session-creation response.
type sessionResponse struct {
	Order struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"order"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type hostedCheckoutGateway struct {
	client *http.Client
	cfg    *config.GatewayConfig
	logger *slog.Logger
}

// NewHostedCheckoutGateway creates the provider client from configuration.
func NewHostedCheckoutGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Gateway == nil || cfg.Gateway.Endpoint == "" {
		return nil, errors.New("gateway endpoint is required")
	}

	return &hostedCheckoutGateway{
		client: &http.Client{Timeout: cfg.Gateway.Timeout},
		cfg:    cfg.Gateway,
		logger: logger,
	}, nil
}

// CreateSession exchanges the line items for a hosted payment session.
func (g *hostedCheckoutGateway) CreateSession(ctx context.Context, lineItems []entity.LineItem, successURL, cancelURL string) (*service.GatewaySession, error) {
	if len(lineItems) == 0 {
		return nil, errors.New("no line items to create a session for")
	}

	payload := g.buildRequest(lineItems, successURL, cancelURL)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build session request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach payment provider")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read provider response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded sessionResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode provider response")
	}
	if decoded.Error != nil {
		return nil, errors.Errorf("provider rejected session: %s (%s)", decoded.Error.Message, decoded.Error.Code)
	}
	if decoded.Order.Ref == "" || decoded.Order.URL == "" {
		return nil, errors.New("provider returned incomplete session")
	}

	g.logger.Debug("gateway session created", slog.String("sessionID", decoded.Order.Ref))

	return &service.GatewaySession{
		SessionID:   decoded.Order.Ref,
		RedirectURL: decoded.Order.URL,
	}, nil
}

func (g *hostedCheckoutGateway) buildRequest(lineItems []entity.LineItem, successURL, cancelURL string) *sessionRequest {
	testMode := 0
	if g.cfg.TestMode {
		testMode = 1
	}

	var totalMinor int64
	items := make([]sessionOrderItem, 0, len(lineItems))
	for _, item := range lineItems {
		totalMinor += item.UnitAmount * item.Quantity
		items = append(items, sessionOrderItem{
			Description: item.Name,
			UnitAmount:  item.UnitAmount,
			Quantity:    item.Quantity,
		})
	}

	// The provider expects the amount in major units as a decimal string.
	amount := decimal.NewFromInt(totalMinor).Div(minorUnitsPerMajor)

	return &sessionRequest{
		Method:  "create",
		Store:   g.cfg.StoreID,
		AuthKey: g.cfg.AuthKey,
		Order: sessionOrder{
			CartID:      uuid.NewString(),
			Test:        testMode,
			Amount:      amount.String(),
			Currency:    lineItems[0].Currency,
			Description: "gemmarket order",
			Items:       items,
		},
		Return: sessionReturns{
			Authorised: successURL,
			Declined:   cancelURL,
			Cancelled:  cancelURL,
		},
	}
}
