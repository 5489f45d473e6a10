package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/souvikghost/Souvik-Tech-Agency/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(accountID, role string) (string, time.Time, error)
	Verify(tokenString string) (*SessionClaims, error)
	Expiry() time.Duration
}

// TokenService mints and verifies stateless session tokens. Nothing is
// stored server-side, so a token stays valid until its natural expiry.
type TokenService struct {
	Secret        string
	SessionExpiry time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
	Role      string `json:"role"`
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		Secret:        secret,
		SessionExpiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (ts *TokenService) Issue(accountID, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.SessionExpiry)

	claims := SessionClaims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates the given session token string.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.SessionExpiry
}
