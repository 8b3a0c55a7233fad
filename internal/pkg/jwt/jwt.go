package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = time.Hour

var (
	ErrEmptyClaim   = errors.New("email is required")
	ErrNoToken      = errors.New("token is required")
	ErrUnverifiable = errors.New("token cannot be verified")
	ErrNoSigningKey = errors.New("signing key is not configured")
)

var signingAlgorithm = jwtlib.SigningMethodHS256

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Claims struct {
	Email string `json:"email"`
	jwtlib.RegisteredClaims
}

func New(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token for email that expires after the service TTL.
func (s *Service) Issue(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyClaim
	}
	if len(s.secret) == 0 {
		return "", ErrNoSigningKey
	}

	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(signingAlgorithm, claims)
	return token.SignedString(s.secret)
}

// Verify returns the claims of a well-signed, unexpired token.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return nil, ErrNoToken
	}
	if len(s.secret) == 0 {
		return nil, ErrNoSigningKey
	}

	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	},
		jwtlib.WithValidMethods([]string{signingAlgorithm.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrUnverifiable
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Email == "" {
		return nil, ErrUnverifiable
	}

	return claims, nil
}
