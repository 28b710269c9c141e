package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenParser validates bearer tokens issued by the identity provider and
// extracts the viewer's email. Only HS256 is accepted.
type TokenParser struct {
	secret []byte
	issuer string
}

// NewTokenParser creates a parser for the given shared secret.
// secret must be at least 32 characters for HS256 security.
// An empty issuer disables the issuer check.
func NewTokenParser(secret, issuer string) *TokenParser {
	return &TokenParser{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// identityClaims extends standard JWT claims with the provider's email claim.
type identityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Parse validates the token and returns the identity it carries.
func (p *TokenParser) Parse(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	if p.issuer != "" && claims.Issuer != p.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", p.issuer, claims.Issuer)
	}

	if claims.Email == "" {
		return Identity{}, fmt.Errorf("token carries no email claim")
	}

	return Identity{Email: claims.Email}, nil
}
