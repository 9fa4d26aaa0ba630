// Package middleware contains echo middleware for the HTTP delivery.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"gemmarket/config"
	"gemmarket/internal/domain/entity"
	"gemmarket/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderCartSession carries the anonymous cart session id for requests
// without a bearer token.
const HeaderCartSession = "X-Cart-Session"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and stores the user identity
// on the request context. Requests without a valid bearer token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		if err := m.applyBearerToken(c, authHeader); err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		return next(c)
	}
}

// AuthenticateOptional validates the bearer token when one is present but
// lets anonymous requests through untouched. Cart and checkout routes use it
// so both logged-in users and anonymous sessions share the same handlers.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		// A malformed token on an optional route is still a client error.
		if err := m.applyBearerToken(c, authHeader); err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		return next(c)
	}
}

// applyBearerToken parses the Authorization header and stores userID and
// roles on the echo context.
func (m *AuthMiddleware) applyBearerToken(c echo.Context, authHeader string) error {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Failed to parse token claims")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User ID missing from token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user ID format in token")
	}

	rolesClaim, _ := claims["roles"].([]any)
	var roles []string
	for _, r := range rolesClaim {
		if roleStr, ok := r.(string); ok {
			roles = append(roles, roleStr)
		}
	}

	c.Set("userID", userID)
	c.Set("roles", roles)

	return nil
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rolesVal := c.Get("roles")
			roles, ok := rolesVal.([]string)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if !slices.Contains(roles, requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// UserIDFrom extracts the authenticated user id set by Authenticate.
func UserIDFrom(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// CartIdentityFrom resolves the cart identity for a request: the JWT subject
// when authenticated, else the anonymous session id from the X-Cart-Session
// header. The second return is false when neither is present.
func CartIdentityFrom(c echo.Context) (entity.Identity, bool) {
	if userID, ok := UserIDFrom(c); ok {
		return entity.Identity("user:" + userID.String()), true
	}

	if session := c.Request().Header.Get(HeaderCartSession); session != "" {
		return entity.Identity("session:" + session), true
	}

	return "", false
}
