package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/legacyvault/internal/auth/domain"
	apperrors "github.com/allisson/legacyvault/internal/errors"
)

type jwtTokenService struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// Issue signs RegisteredClaims with iss, sub, iat and exp.
func (s *jwtTokenService) Issue(userID string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(userID) == "" || ttl <= 0 {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "user id and a positive ttl are required")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify accepts only HS256 tokens from the configured issuer that carry an
// expiry and a non-empty subject.
func (s *jwtTokenService) Verify(token string) (*authDomain.Principal, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, authDomain.ErrInvalidToken
	}

	principal := &authDomain.Principal{UserID: claims.Subject}
	if claims.IssuedAt != nil {
		principal.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}

// NewTokenService creates a TokenService. Both secret and issuer are required.
func NewTokenService(secret, issuer string) (TokenService, error) {
	if secret == "" || issuer == "" {
		return nil, authDomain.ErrInvalidTokenConfig
	}

	return &jwtTokenService{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(30*time.Second),
		),
	}, nil
}
