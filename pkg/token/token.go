package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
)

// Service issues and verifies HS256-signed identity tokens. The secret,
// issuer and expiry come from configuration; a zero expiry issues tokens
// without an exp claim.
type Service struct {
	secret []byte
	issuer string
	expiry time.Duration
}

func NewService(secret, issuer string, expiry time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
	}
}

func (s *Service) Generate(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"iss": s.issuer,
	}
	if s.expiry != 0 {
		claims["exp"] = now.Add(s.expiry).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry and returns the user id encoded in
// the token.
func (s *Service) Validate(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpiredToken
		default:
			return 0, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}
