package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/google-ads-downloader/internal/config"
	"github.com/vfg2006/google-ads-downloader/internal/domain"
)

const issuer = "google-ads-downloader"

type Authenticator interface {
	GenerateToken(operator string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		secret: []byte(cfg.Secret),
		now:    time.Now,
	}
}

// GenerateToken assina um token HS256 para o operador informado
func (s *Service) GenerateToken(operator string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrAuthDisabled
	}
	if operator == "" {
		return "", ErrEmptyOperator
	}

	now := s.now()
	claims := domain.Claims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   operator,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrAuthDisabled
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
