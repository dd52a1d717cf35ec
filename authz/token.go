package authz

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "storefront-api"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	Email      string `json:"email"`
	Role       string `json:"role"`
	CustomerID *uint  `json:"customer_id,omitempty"`
}

func (c Claims) Principal() Principal {
	id, _ := strconv.ParseUint(c.Subject, 10, 64)
	return Principal{UserID: uint(id), CustomerID: c.CustomerID, Role: c.Role}
}

// IssueToken signs an HS256 token for user valid for ttl.
func IssueToken(user models.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is not configured")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:      user.Email,
		Role:       user.Role,
		CustomerID: user.CustomerID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
