package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"

	"github.com/cafeorigenes/origenes-api/internal/auth"
	"github.com/cafeorigenes/origenes-api/internal/domain"
)

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (no credentials of its kind).
// Returns the user, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*domain.AuthUser, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				user, err := validate(r)
				if user == nil && err == nil {
					continue
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					writeUnauthorized(w, "Invalid or expired token")
					return
				}

				ctx := domain.ContextWithUser(r.Context(), *user)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// roleClaims carries the role claim issued at login.
type roleClaims struct {
	Role domain.Role `json:"role"`
}

func (c *roleClaims) Validate(context.Context) error {
	if !c.Role.Valid() {
		return fmt.Errorf("unknown role [%s]", c.Role)
	}
	return nil
}

// NewJWTValidator validates the HS256 session tokens issued by auth.JWTIssuer.
func NewJWTValidator(cfg auth.JWTConfig) (AuthValidator, error) {
	keyFunc := func(context.Context) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}

	jwtValidator, err := validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithCustomClaims(func() validator.CustomClaims { return &roleClaims{} }),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*domain.AuthUser, error) {
		token, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
		if err != nil {
			return nil, err
		}
		if token == "" {
			return nil, nil
		}

		validated, err := jwtValidator.ValidateToken(r.Context(), token)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token: %w", err)
		}

		claims, ok := validated.(*validator.ValidatedClaims)
		if !ok {
			return nil, errors.New("unexpected claims type")
		}
		role, ok := claims.CustomClaims.(*roleClaims)
		if !ok {
			return nil, errors.New("token has no role claim")
		}

		userID, err := strconv.ParseInt(claims.RegisteredClaims.Subject, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid token subject [%s]: %w", claims.RegisteredClaims.Subject, err)
		}

		return &domain.AuthUser{ID: userID, Role: role.Role}, nil
	}, nil
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeMessage(w, http.StatusUnauthorized, message)
}

// writeMessage writes a {"message": ...} JSON body from middleware that runs before the
// controllers.
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{Message: message})
}
