package handler

import (
	"log/slog"
	"net/http"

	"gemmarket/internal/delivery/http/middleware"
	"gemmarket/internal/delivery/http/response"
	"gemmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers. Cart routes work for both
// authenticated users and anonymous sessions; the identity is resolved from
// the JWT subject or the X-Cart-Session header.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

type addCartItemInput struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// cartItemView is the JSON shape of one cart line.
type cartItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
}

// cartView is the JSON shape of a rendered cart.
type cartView struct {
	Items []cartItemView `json:"items"`
	Total string         `json:"total"`
}

// AddItem inserts a product reference into the caller's cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	identity, ok := middleware.CartIdentityFrom(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "A bearer token or X-Cart-Session header is required")
	}

	var input *addCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.AddItem(c.Request().Context(), identity, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product added to cart")
}

// RemoveItem drops a product reference; removing an absent id is a no-op.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	identity, ok := middleware.CartIdentityFrom(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "A bearer token or X-Cart-Session header is required")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), identity, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product removed from cart")
}

// GetCart renders the caller's cart with freshly fetched prices.
func (h *CartHandler) GetCart(c echo.Context) error {
	identity, ok := middleware.CartIdentityFrom(c)
	if !ok {
		return response.BadRequest(c, "MISSING_IDENTITY", "A bearer token or X-Cart-Session header is required")
	}

	cart, err := h.uc.GetCart(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, renderCart(cart), "Cart retrieved successfully")
}

func renderCart(cart *usecase.CartView) *cartView {
	view := &cartView{
		Items: make([]cartItemView, 0, len(cart.Items)),
		Total: cart.Total.String(),
	}
	for _, item := range cart.Items {
		view.Items = append(view.Items, cartItemView{
			ProductID: item.Product.ID.String(),
			Name:      item.Product.Name,
			Price:     item.Product.Price.String(),
		})
	}

	return view
}
