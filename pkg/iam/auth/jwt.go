package auth

import (
	"errors"
	"time"

	"github.com/Abraxas-365/pathway/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

type TokenClaims struct {
	UserID    kernel.UserID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type jwtClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

func (s *JWTService) GenerateAccessToken(userID kernel.UserID) (string, error) {
	if userID.IsEmpty() {
		return "", ErrInvalidToken().WithMessage("cannot issue a token without a user id")
	}

	now := s.now()
	claims := jwtClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", ErrRegistry.NewWithCause(CodeTokenGenerationFailed, err)
	}
	return signed, nil
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	var claims jwtClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired()
		}
		return nil, ErrRegistry.NewWithCause(CodeInvalidToken, err)
	}

	if claims.UserID == "" {
		return nil, ErrInvalidToken()
	}

	out := &TokenClaims{UserID: kernel.NewUserID(claims.UserID)}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
