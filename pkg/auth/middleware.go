package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/nftperks/raffleport/pkg/utils"
	"github.com/nftperks/raffleport/pkg/validate"
)

type ContextKey string

const WalletKey ContextKey = "wallet"

// AuthMiddleware extracts the wallet claim from the bearer token and puts the
// normalized address on the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), WalletKey, validate.Normalize(claims.Wallet))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware additionally requires the admin claim. Orchestration routes
// are only reachable through it.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(r)
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !claims.IsAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}

		ctx := context.WithValue(r.Context(), WalletKey, validate.Normalize(claims.Wallet))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFromRequest(r *http.Request) (*Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	jwtService := &JWTService{}
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}
