package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ikonnect/website/backend/pkg/utils"
)

// AdminClaims is the token payload minted for the analytics dashboard.
type AdminClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// AdminOnly gates a route on a bearer token carrying the admin scope. With
// an empty secret the gate stays closed, so deployments without admin
// configuration never expose the summary endpoint.
func AdminOnly(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				utils.RespondError(w, http.StatusServiceUnavailable, "admin access is not configured")
				return
			}

			token := bearerToken(r)
			if token == "" {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized: no token provided")
				return
			}

			claims, err := ValidateAdminToken(secret, token)
			if err != nil || claims.Scope != "admin" {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized: invalid or expired token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MintAdminToken issues an HS256 admin token. Used by deploy tooling and by
// the remote engine client in tests.
func MintAdminToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AdminClaims{
		Scope: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "ikonnect-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, nil
}

// ValidateAdminToken parses and verifies an admin token.
func ValidateAdminToken(secret, tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}
