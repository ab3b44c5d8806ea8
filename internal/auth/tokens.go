package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 24 * time.Hour

type Claims struct {
	ID              int64    `json:"id"`
	FullName        string   `json:"fullName"`
	PreferredTopics []string `json:"preferredTopics"`
	jwt.RegisteredClaims
}

type FailureReason string

const (
	ReasonNone         FailureReason = ""
	ReasonMissing      FailureReason = "missing"
	ReasonMalformed    FailureReason = "malformed"
	ReasonExpired      FailureReason = "expired"
	ReasonBadSignature FailureReason = "bad_signature"
	ReasonInvalid      FailureReason = "invalid"
)

// Verification is the outcome of checking a token: decoded claims on
// success, otherwise the reason it was refused.
type Verification struct {
	Claims *Claims
	Reason FailureReason
}

func (v Verification) Valid() bool {
	return v.Reason == ReasonNone && v.Claims != nil
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (t *Tokens) Issue(id int64, fullName string, preferredTopics []string) (string, error) {
	now := t.now()
	claims := Claims{
		ID:              id,
		FullName:        fullName,
		PreferredTopics: preferredTopics,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (t *Tokens) Verify(token string) Verification {
	if token == "" {
		return Verification{Reason: ReasonMissing}
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	switch {
	case err == nil && parsed.Valid:
		return Verification{Claims: claims}
	case errors.Is(err, jwt.ErrTokenMalformed):
		return Verification{Reason: ReasonMalformed}
	case errors.Is(err, jwt.ErrTokenExpired):
		return Verification{Reason: ReasonExpired}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Verification{Reason: ReasonBadSignature}
	default:
		return Verification{Reason: ReasonInvalid}
	}
}
