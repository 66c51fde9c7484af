package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed snapshot of an account carried by the session token.
type SessionClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	HasAccess bool   `json:"has_access"`
	jwt.RegisteredClaims
}

// SessionSnapshot is the account view a token is minted from.
type SessionSnapshot struct {
	UserID    string
	Email     string
	HasAccess bool
}

func (c *SessionClaims) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		UserID:    c.UserID,
		Email:     c.Email,
		HasAccess: c.HasAccess,
	}
}

type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock swaps the time source used for issuing and validating tokens.
func (t *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	t.now = now
	return t
}

func (t *TokenCodec) TTL() time.Duration {
	return t.ttl
}

func (t *TokenCodec) Encode(snapshot SessionSnapshot) (string, *SessionClaims, error) {
	if snapshot.UserID == "" || snapshot.Email == "" {
		return "", nil, errors.New("session snapshot requires user id and email")
	}

	issuedAt := t.now()
	claims := &SessionClaims{
		UserID:    snapshot.UserID,
		Email:     snapshot.Email,
		HasAccess: snapshot.HasAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   snapshot.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return signed, claims, nil
}

func (t *TokenCodec) Decode(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: missing identity", ErrInvalidToken)
	}

	return claims, nil
}
