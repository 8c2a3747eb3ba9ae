package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the claims the external authorization layer mints for
// compliance operators. This service only verifies the token; deciding who
// gets one is out of scope.
type AdminClaims struct {
	ActorID string `json:"actor_id"`
	Scope   string `json:"scope"`
	jwt.RegisteredClaims
}

// scopePrivacyAdmin is required on every privacy route.
const scopePrivacyAdmin = "privacy:admin"

type contextKeyActorID struct{}

// ContextKeyActorID is exported for use in handlers and tests.
var ContextKeyActorID = contextKeyActorID{}

// GetActorID retrieves the authenticated operator ID from the context.
func GetActorID(ctx context.Context) string {
	actorID, ok := ctx.Value(ContextKeyActorID).(string)
	if !ok {
		return ""
	}
	return actorID
}

// WithActorID injects an operator ID into the context. Test helper.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ContextKeyActorID, actorID)
}

// JWTValidator verifies admin tokens minted by the authorization layer.
type JWTValidator struct {
	signingKey []byte
}

func NewJWTValidator(signingKey string) *JWTValidator {
	return &JWTValidator{signingKey: []byte(signingKey)}
}

// ValidateToken parses and verifies a token, returning its claims.
func (v *JWTValidator) ValidateToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":%q,"error_description":%q}`, errCode, errDesc))
}

// RequireAdmin verifies the bearer token and the privacy:admin scope. The
// operator id from the token is placed in context for audit attribution.
func RequireAdmin(validator *JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			const bearerPrefix = "Bearer "
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", GetRequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", GetRequestID(ctx),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			if !hasScope(claims.Scope, scopePrivacyAdmin) {
				logger.WarnContext(ctx, "forbidden - missing privacy scope",
					"actor_id", claims.ActorID,
					"request_id", GetRequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "privacy:admin scope required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActorID(ctx, claims.ActorID)))
		})
	}
}

func hasScope(scopes, want string) bool {
	for _, s := range strings.Fields(scopes) {
		if s == want {
			return true
		}
	}
	return false
}
