package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"gemmarket/internal/delivery/http/middleware"
	"gemmarket/internal/delivery/http/response"
	"gemmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout flow: initiation plus
// the gateway's success and cancel redirects.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, logger: logger}
}

// Begin snapshots the caller's cart into a checkout intent and returns the
// gateway redirect plus a pay-by-QR image of the same URL.
func (h *CheckoutHandler) Begin(c echo.Context) error {
	identity, ok := middleware.CartIdentityFrom(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "A bearer token or X-Cart-Session header is required")
	}

	output, err := h.uc.BeginCheckout(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{
		"session_id":   output.SessionID,
		"redirect_url": output.RedirectURL,
		"total":        output.Total,
	}
	if len(output.QRCodePNG) > 0 {
		body["qr_code_png"] = base64.StdEncoding.EncodeToString(output.QRCodePNG)
	}

	return response.Success(c, http.StatusOK, body, "Checkout session created")
}

// Success processes the gateway's success redirect. Repeated or unknown
// sessions are benign no-ops, so reloading the landing page is safe.
func (h *CheckoutHandler) Success(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "session_id is required")
	}

	if err := h.uc.OnSuccess(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"session_id": sessionID}, "Payment confirmed")
}

// Cancel discards a pending intent; the cart is left untouched for retry.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "session_id is required")
	}

	if err := h.uc.OnCancel(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"session_id": sessionID}, "Checkout cancelled")
}
