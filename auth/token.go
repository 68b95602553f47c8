package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the caller of a command handler.
type Claims struct {
	MailAddress string   `json:"mail_address"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 tokens with a configured secret.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

func NewTokenIssuer(secret, issuer string, duration time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), issuer: issuer, duration: duration}
}

// Generate creates a signed JWT for a household member mail address.
func (t TokenIssuer) Generate(mailAddress string, roles []string) (string, error) {
	now := time.Now()
	claims := &Claims{
		MailAddress: mailAddress,
		Roles:       roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   mailAddress,
			ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    t.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses the token and checks its signature, issuer and expiration.
func (t TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(tokenString, "Bearer "), &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return t.secret, nil
		},
		jwt.WithIssuer(t.issuer),
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
