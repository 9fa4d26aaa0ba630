package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gemmarket/config"
	"gemmarket/internal/domain/repository"
	mockRepo "gemmarket/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Checkout: &config.CheckoutConfig{
			Currency:   "usd",
			SuccessURL: "https://shop.example.com/payments/success",
			CancelURL:  "https://shop.example.com/payments/cancel",
			IntentTTL:  time.Hour,
		},
	}
}

// expectExecute wires one transactional closure invocation: the repositories
// set up by the callback are handed to the closure and the closure's error is
// what Execute returns.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
