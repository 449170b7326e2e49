package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const testWallet = "0x1111111111111111111111111111111111111111"

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		wallet         string
		isAdmin        bool
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			wallet:         testWallet,
			isAdmin:        false,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Admin Token",
			wallet:         testWallet,
			isAdmin:        true,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.wallet, tt.isAdmin, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	validToken, err := jwtService.GenerateJWT(testWallet, true, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	expiredToken, err := jwtService.GenerateJWT(testWallet, false, time.Now().Add(-time.Hour))
	assert.NoError(t, err)

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Wallet: testWallet,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			Issuer:    "someone-else",
		},
	})
	wrongIssuerToken, err := wrongIssuer.SignedString(secretKey)
	assert.NoError(t, err)

	emptyWallet := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			Issuer:    "raffleport",
		},
	})
	emptyWalletToken, err := emptyWallet.SignedString(secretKey)
	assert.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectError bool
		isAdmin     bool
	}{
		{name: "Valid token", token: validToken, expectError: false, isAdmin: true},
		{name: "Expired token", token: expiredToken, expectError: true},
		{name: "Garbage token", token: "not.a.token", expectError: true},
		{name: "Wrong issuer", token: wrongIssuerToken, expectError: true},
		{name: "Empty wallet claim", token: emptyWalletToken, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testWallet, claims.Wallet)
				assert.Equal(t, tt.isAdmin, claims.IsAdmin)
			}
		})
	}
}

func TestSetSecret(t *testing.T) {
	original := secretKey
	defer func() { secretKey = original }()

	jwtService := &JWTService{}
	token, err := jwtService.GenerateJWT(testWallet, false, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	SetSecret("rotated-secret")
	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err, "token signed with the old secret must be rejected")

	// Empty secret keeps the current key.
	SetSecret("")
	assert.Equal(t, []byte("rotated-secret"), secretKey)
}
