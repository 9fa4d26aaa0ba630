package handler

import (
	"log/slog"
	"net/http"

	"gemmarket/internal/delivery/http/middleware"
	"gemmarket/internal/delivery/http/response"
	"gemmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and profile handlers.
type UserHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUC usecase.UserUsecase, profileUC usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUC:    userUC,
		profileUC: profileUC,
		logger:    logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return credential data in the response.
	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

// Login handles the login request; it accepts username or email.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
		"user":         output.User,
	}, "Login successful")
}

// GetProfile returns the calling user together with any merchant profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpsertMerchantProfile creates the caller's merchant profile on first call
// and updates it in place afterwards.
func (h *UserHandler) UpsertMerchantProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.UpsertMerchantProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUC.UpsertMerchantProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Merchant profile saved successfully")
}
