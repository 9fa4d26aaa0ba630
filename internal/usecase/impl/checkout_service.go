package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gemmarket/config"
	deliverycontext "gemmarket/internal/delivery/context"
	"gemmarket/internal/domain/entity"
	domainerrors "gemmarket/internal/domain/errors"
	"gemmarket/internal/domain/repository"
	"gemmarket/internal/domain/service"
	"gemmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

// checkoutService implements the CheckoutUsecase interface. It is the only
// place that talks to the payment gateway, and it keeps the gateway call
// outside any database transaction.
type checkoutService struct {
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	checkout  *config.CheckoutConfig
	logger    *slog.Logger

	now func() time.Time
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	QRCode    service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		qrcode:    params.QRCode,
		checkout:  params.Config.Checkout,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginCheckout snapshots the identity's cart, exchanges it for a hosted
// payment session, and records a pending CheckoutIntent. A repeated checkout
// supersedes any still-pending intent of the same identity instead of merging
// with it. Nothing is written when validation or the gateway call fails.
func (srv *checkoutService) BeginCheckout(ctx context.Context, identity entity.Identity) (*usecase.BeginCheckoutOutput, error) {
	lineItems, total, err := srv.snapshotCart(ctx, identity)
	if err != nil {
		return nil, err
	}

	// The gateway call runs outside any transaction so an unavailable
	// provider never holds database locks.
	session, err := srv.gateway.CreateSession(ctx, lineItems, srv.checkout.SuccessURL, srv.checkout.CancelURL)
	if err != nil {
		srv.log(ctx).Error("Payment gateway session creation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGatewayUnavailable, "gateway session creation failed")
	}

	intent := &entity.CheckoutIntent{
		SessionID:   session.SessionID,
		Identity:    identity,
		LineItems:   lineItems,
		Total:       total,
		RedirectURL: session.RedirectURL,
		Status:      entity.IntentStatusPending,
		ExpiresAt:   srv.now().Add(srv.checkout.IntentTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		intentRepo := repoFactory.CheckoutIntentRepo()

		if err := intentRepo.SupersedePending(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to supersede pending intents")
		}
		if err := intentRepo.Create(ctx, intent); err != nil {
			return errors.Wrap(err, "failed to create checkout intent")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The QR image is a convenience view of the redirect URL; a generation
	// failure must not fail the checkout itself.
	qrPNG, err := srv.qrcode.GeneratePaymentQR(session.RedirectURL)
	if err != nil {
		srv.log(ctx).Warn("Payment QR generation failed", slog.Any("error", err))
		qrPNG = nil
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("sessionID", session.SessionID),
		slog.Int("lineItems", len(lineItems)),
		slog.String("total", total.String()))

	return &usecase.BeginCheckoutOutput{
		SessionID:   session.SessionID,
		RedirectURL: session.RedirectURL,
		Total:       total.String(),
		QRCodePNG:   qrPNG,
	}, nil
}

// snapshotCart validates the cart against the current catalog and converts it
// into gateway line items. Unit amounts are in minor currency units with
// sub-cent precision truncated; the returned total keeps full decimal
// precision for display.
func (srv *checkoutService) snapshotCart(ctx context.Context, identity entity.Identity) ([]entity.LineItem, decimal.Decimal, error) {
	var lineItems []entity.LineItem
	total := decimal.Zero

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := repoFactory.CartRepo().FindByIdentity(ctx, identity)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if cart.IsEmpty() {
			return errors.Wrap(domainerrors.ErrEmptyCart, "checkout on empty cart")
		}

		products, err := repoFactory.ProductRepo().FindByIDs(ctx, cart.ProductIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve cart products")
		}

		byID := make(map[uuid.UUID]*entity.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}

		var staleIDs []string
		for _, productID := range cart.ProductIDs {
			product, ok := byID[productID]
			if !ok {
				staleIDs = append(staleIDs, productID.String())

				continue
			}

			lineItems = append(lineItems, entity.LineItem{
				ProductID:  product.ID,
				Name:       product.Name,
				UnitAmount: product.Price.Mul(minorUnitsPerMajor).Floor().IntPart(),
				Currency:   srv.checkout.Currency,
				Quantity:   1,
			})
			total = total.Add(product.Price)
		}

		if len(staleIDs) > 0 {
			srv.log(ctx).Warn("Checkout blocked by stale cart items", slog.Any("productIDs", staleIDs))

			return domainerrors.ErrStaleCartItem.
				WithDetails("unavailable products: " + strings.Join(staleIDs, ", ")).
				WrapMessage("cart references missing products")
		}

		return nil
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	return lineItems, total, nil
}

// OnSuccess applies the side effects of a confirmed payment exactly once:
// clear the originating cart, finalize the intent, publish the completion
// event. Unknown, resolved, or expired sessions are benign no-ops.
func (srv *checkoutService) OnSuccess(ctx context.Context, sessionID string) error {
	var finalized *entity.CheckoutIntent
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		intentRepo := repoFactory.CheckoutIntentRepo()

		intent, err := intentRepo.FindBySessionID(ctx, sessionID)
		if errors.Is(err, repository.ErrIntentNotFound) {
			srv.log(ctx).Info("Success callback for unknown session", slog.String("sessionID", sessionID))

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load checkout intent")
		}

		if intent.Resolved() {
			srv.log(ctx).Info("Success callback replayed",
				slog.String("sessionID", sessionID), slog.String("status", string(intent.Status)))

			return nil
		}

		if intent.Expired(srv.now()) {
			if err := intentRepo.UpdateStatus(ctx, sessionID, entity.IntentStatusExpired); err != nil {
				return errors.Wrap(err, "failed to expire checkout intent")
			}
			srv.log(ctx).Warn("Success callback after intent TTL", slog.String("sessionID", sessionID))

			return nil
		}

		if err := repoFactory.CartRepo().Clear(ctx, intent.Identity); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}
		if err := intentRepo.UpdateStatus(ctx, sessionID, entity.IntentStatusFinalized); err != nil {
			return errors.Wrap(err, "failed to finalize checkout intent")
		}

		finalized = intent

		return nil
	})
	if err != nil {
		return err
	}
	if finalized == nil {
		return nil
	}

	srv.publishCompleted(ctx, finalized)

	return nil
}

// OnCancel discards a pending intent so the buyer can adjust the cart and
// retry. The cart itself is left untouched.
func (srv *checkoutService) OnCancel(ctx context.Context, sessionID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		intentRepo := repoFactory.CheckoutIntentRepo()

		intent, err := intentRepo.FindBySessionID(ctx, sessionID)
		if errors.Is(err, repository.ErrIntentNotFound) {
			srv.log(ctx).Info("Cancel callback for unknown session", slog.String("sessionID", sessionID))

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load checkout intent")
		}

		if intent.Resolved() {
			return nil
		}

		status := entity.IntentStatusCancelled
		if intent.Expired(srv.now()) {
			status = entity.IntentStatusExpired
		}

		if err := intentRepo.UpdateStatus(ctx, sessionID, status); err != nil {
			return errors.Wrap(err, "failed to cancel checkout intent")
		}

		srv.log(ctx).Info("Checkout intent cancelled",
			slog.String("sessionID", sessionID), slog.String("status", string(status)))

		return nil
	})
}

// publishCompleted emits the checkout-completed event after the transaction
// committed. Publishing is best effort; a broker outage never rolls back a
// finalized payment.
func (srv *checkoutService) publishCompleted(ctx context.Context, intent *entity.CheckoutIntent) {
	productIDs := make([]string, 0, len(intent.LineItems))
	for _, item := range intent.LineItems {
		productIDs = append(productIDs, item.ProductID.String())
	}

	event := &service.CheckoutCompletedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		SessionID:  intent.SessionID,
		Identity:   string(intent.Identity),
		Total:      intent.Total.String(),
		Currency:   srv.checkout.Currency,
		ProductIDs: productIDs,
	}

	if err := srv.publisher.PublishCheckoutCompleted(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish checkout completed event",
			slog.String("sessionID", intent.SessionID), slog.Any("error", err))
	}
}
