// Package middleware carries the echo middleware chain: request IDs, request
// logging, and backend-token authentication.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"pipeshare/config"
	"pipeshare/domain"
	"pipeshare/utils/logger"
)

const (
	backendTokenHeader = "X-Pipeshare-Backend-Token"
	userIDHeader       = "X-User-Id"
	sessionIDHeader    = "X-Session-Id"
)

var (
	errMissingToken    = errors.New("missing backend token")
	errInvalidToken    = errors.New("invalid backend token")
	errInvalidClaims   = errors.New("invalid claims")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
)

// BackendClaims represents the JWT claims minted by the auth service.
type BackendClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Domain   string `json:"domain"`
	ClientID string `json:"client_id"`
	Sid      string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTAuthMiddleware validates backend tokens and attaches the authenticated
// user to the request context.
type JWTAuthMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

func NewJWTAuthMiddleware(baseLogger *slog.Logger, cfg *config.Config) *JWTAuthMiddleware {
	secret := []byte(cfg.Auth.BackendTokenSecret)
	if len(secret) == 0 && baseLogger != nil {
		baseLogger.Warn("BACKEND_TOKEN_SECRET not set, JWT auth will deny all requests")
	}

	return &JWTAuthMiddleware{
		logger:   baseLogger,
		secret:   secret,
		issuer:   cfg.Auth.BackendTokenIssuer,
		audience: cfg.Auth.BackendTokenAudience,
	}
}

// RequireJWT ensures a valid backend token is present before the request proceeds.
func (m *JWTAuthMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateJWT(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing backend token")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid backend token")
				case errors.Is(err, errInvalidIssuer), errors.Is(err, errInvalidAudience):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer or audience")
				default:
					if m.logger != nil {
						m.logger.Error("JWT validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			ctx = context.WithValue(ctx, logger.UserIDKey, user.UserID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *JWTAuthMiddleware) validateJWT(c echo.Context) (*domain.UserContext, error) {
	tokenStr := c.Request().Header.Get(backendTokenHeader)
	if tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &BackendClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*BackendClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	if claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}

	audienceMatch := false
	for _, aud := range claims.Audience {
		if aud == m.audience {
			audienceMatch = true
			break
		}
	}
	if !audienceMatch {
		return nil, errInvalidAudience
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a uuid", errInvalidClaims)
	}

	clientID := uuid.Nil
	if claims.ClientID != "" {
		clientID, err = uuid.Parse(claims.ClientID)
		if err != nil {
			return nil, fmt.Errorf("%w: client_id is not a uuid", errInvalidClaims)
		}
	}

	// Header values, when present, must match the token claims.
	if headerUserID := c.Request().Header.Get(userIDHeader); headerUserID != "" && headerUserID != claims.Subject {
		return nil, fmt.Errorf("user id mismatch: header=%s, token=%s", headerUserID, claims.Subject)
	}
	if headerSessionID := c.Request().Header.Get(sessionIDHeader); headerSessionID != "" && headerSessionID != claims.Sid {
		return nil, fmt.Errorf("session id mismatch: header=%s, token=%s", headerSessionID, claims.Sid)
	}

	user := &domain.UserContext{
		UserID:    userID,
		ClientID:  clientID,
		Email:     claims.Email,
		Role:      domain.UserRole(claims.Role),
		Domain:    claims.Domain,
		SessionID: claims.Sid,
	}
	if claims.IssuedAt != nil {
		user.LoginAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}

	return user, nil
}
