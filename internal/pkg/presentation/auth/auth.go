package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

type contextKey string

const contextKeyPrincipal contextKey = "principal"

const (
	RoleAdmin  string = "admin"
	RoleEditor string = "editor"
)

// Principal holds the identity claims extracted from a validated token.
type Principal struct {
	Subject string
	Roles   []string
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// FromContext returns the principal stored by the middleware, or an
// anonymous principal when the request never passed through it.
func FromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(contextKeyPrincipal).(Principal); ok {
		return p
	}

	return Principal{Subject: "anonymous"}
}

// RequireRoles returns a middleware that validates HMAC signed bearer
// tokens and rejects requests whose token carries none of the given roles.
func RequireRoles(logger zerolog.Logger, secret string, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			principal, err := validateToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				logger.Warn().Err(err).Msg("rejected bearer token")
				writeError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}

			if !hasAnyRole(principal, roles) {
				writeError(w, http.StatusForbidden, "insufficient privileges")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateToken(tokenString, secret string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("token validation failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, fmt.Errorf("invalid claims type")
	}

	principal := Principal{}

	if sub, ok := claims["sub"].(string); ok {
		principal.Subject = sub
	}

	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, role := range roles {
			if s, ok := role.(string); ok {
				principal.Roles = append(principal.Roles, s)
			}
		}
	}

	return principal, nil
}

func hasAnyRole(p Principal, roles []string) bool {
	if len(roles) == 0 {
		return true
	}

	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}

	return false
}

func writeError(w http.ResponseWriter, status int, description string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(fmt.Sprintf(`{"code": %d, "description": %q}`, status, description)))
}
