// Package auth issues and checks the bearer tokens the sandbox hands out.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "homevest-sandbox"
	tokenTTL = 24 * time.Hour
)

var (
	errEmptySecret = errors.New("secret key cannot be empty")
	errEmptyUser   = errors.New("user ID cannot be empty")
)

// Claims carries the owner identity every property request is scoped to.
type Claims struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenDetails is the login/register response body.
type TokenDetails struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expires_in"`
	TokenType string `json:"token_type"`
}

func GenerateJWT(userID, fullName, email, secret string) (*TokenDetails, error) {
	switch {
	case secret == "":
		return nil, errEmptySecret
	case userID == "":
		return nil, errEmptyUser
	}

	issuedAt := time.Now()
	claims := Claims{
		UserID:   userID,
		FullName: fullName,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenDetails{
		Token:     signed,
		ExpiresIn: strconv.FormatInt(int64(tokenTTL/time.Second), 10),
		TokenType: "Bearer",
	}, nil
}

// ValidateJWT accepts only HS256 tokens from this issuer that are currently valid.
func ValidateJWT(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	if tokenString == "" {
		return nil, errors.New("token string cannot be empty")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.UserID == "" {
		return nil, errEmptyUser
	}
	return claims, nil
}
