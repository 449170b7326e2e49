package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(wallet string, isAdmin bool, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("your-secret-key")

// SetSecret overrides the signing key from configuration at startup.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

// Claims carries the authenticated wallet identity issued by the wallet
// connection flow, which lives outside this service.
type Claims struct {
	Wallet  string `json:"wallet"`
	IsAdmin bool   `json:"is_admin"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(wallet string, isAdmin bool, expirationTime time.Time) (string, error) {
	claims := Claims{
		Wallet:  wallet,
		IsAdmin: isAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "raffleport",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Wallet == "" || claims.Issuer != "raffleport" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
