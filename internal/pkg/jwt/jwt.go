package jwt

import (
	"errors"
	"time"

	"restaurant-booking/internal/domain/workflow"
	"restaurant-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "restaurant-booking/workflow"

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

type Claims struct {
	Session workflow.Session `json:"session"`
	jwt.RegisteredClaims
}

// SessionSigner carries workflow sessions to the client as HS256 tokens, so
// the server holds no per-client state between steps.
type SessionSigner struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewSessionSigner(secretKey string, tokenDuration time.Duration, clk clock.Clock) *SessionSigner {
	return &SessionSigner{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

func (s *SessionSigner) Sign(session workflow.Session) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Session: session,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *SessionSigner) Parse(tokenString string) (workflow.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.clock.Now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return workflow.Session{}, ErrExpiredToken
		}
		return workflow.Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Session.State.IsValid() {
		return workflow.Session{}, ErrInvalidToken
	}

	return claims.Session, nil
}
