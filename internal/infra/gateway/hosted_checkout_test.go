package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gemmarket/config"
	"gemmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGatewayConfig(endpoint string) *config.Config {
	return &config.Config{
		Gateway: &config.GatewayConfig{
			Endpoint: endpoint,
			StoreID:  "store-42",
			AuthKey:  "secret-key",
			TestMode: true,
			Timeout:  5 * time.Second,
		},
	}
}

func testLineItems() []entity.LineItem {
	return []entity.LineItem{
		{ProductID: uuid.New(), Name: "Ruby Ring", UnitAmount: 1000, Currency: "usd", Quantity: 1},
		{ProductID: uuid.New(), Name: "Silver Chain", UnitAmount: 505, Currency: "usd", Quantity: 1},
	}
}

func TestCreateSession_Success(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"order":{"ref":"sess_abc","url":"https://pay.example.com/sess_abc"}}`))
	}))
	defer server.Close()

	gw, err := NewHostedCheckoutGateway(newTestGatewayConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	session, err := gw.CreateSession(context.Background(), testLineItems(),
		"https://shop.example.com/success", "https://shop.example.com/cancel")
	require.NoError(t, err)
	assert.Equal(t, "sess_abc", session.SessionID)
	assert.Equal(t, "https://pay.example.com/sess_abc", session.RedirectURL)

	assert.Equal(t, "create", captured["method"])
	assert.Equal(t, "store-42", captured["store"])
	assert.Equal(t, "secret-key", captured["authkey"])

	order, ok := captured["order"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), order["test"])
	assert.Equal(t, "15.05", order["amount"])
	assert.Equal(t, "usd", order["currency"])

	returns, ok := captured["return"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://shop.example.com/success", returns["authorised"])
	assert.Equal(t, "https://shop.example.com/cancel", returns["cancelled"])
}

func TestCreateSession_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"order":{},"error":{"code":"E01","message":"invalid store"}}`))
	}))
	defer server.Close()

	gw, err := NewHostedCheckoutGateway(newTestGatewayConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	session, err := gw.CreateSession(context.Background(), testLineItems(),
		"https://shop.example.com/success", "https://shop.example.com/cancel")
	require.Error(t, err)
	assert.Nil(t, session)
	assert.Contains(t, err.Error(), "invalid store")
}

func TestCreateSession_ProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	gw, err := NewHostedCheckoutGateway(newTestGatewayConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	session, err := gw.CreateSession(context.Background(), testLineItems(),
		"https://shop.example.com/success", "https://shop.example.com/cancel")
	require.Error(t, err)
	assert.Nil(t, session)
}

func TestCreateSession_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw, err := NewHostedCheckoutGateway(newTestGatewayConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	_, err = gw.CreateSession(context.Background(), testLineItems(),
		"https://shop.example.com/success", "https://shop.example.com/cancel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCreateSession_NoLineItems(t *testing.T) {
	gw, err := NewHostedCheckoutGateway(newTestGatewayConfig("https://gateway.example.com"), newDiscardLogger())
	require.NoError(t, err)

	_, err = gw.CreateSession(context.Background(), nil,
		"https://shop.example.com/success", "https://shop.example.com/cancel")
	require.Error(t, err)
}

func TestNewHostedCheckoutGateway_RequiresEndpoint(t *testing.T) {
	_, err := NewHostedCheckoutGateway(&config.Config{Gateway: &config.GatewayConfig{}}, newDiscardLogger())
	require.Error(t, err)
}
