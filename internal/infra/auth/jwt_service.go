// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"campus/config"
	"campus/internal/domain/entity"
	"campus/internal/domain/service"
)

const issuer = "campus"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token.Secret == "" {
		return nil, errors.New("token secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Token.Secret),
		ttl:    cfg.Token.TTL,
	}, nil
}

// Issue creates a signed token carrying the four identity claims.
// Role membership in the closed set is the caller's responsibility.
func (s *jwtService) Issue(identity entity.Identity) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email:    identity.Email,
		FullName: identity.FullName,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  identity.ID,
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks a token string and returns the claims it was issued with.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
