package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const maxSessionLifetime = 24 * time.Hour

var ErrInvalidJWTToken = errors.New("invalid jwt token")

var ErrParseJWTToken = errors.New("failed to parse jwt token")

var ErrExpiredToken = errors.New("token expired")

var ErrFailedSignToken = errors.New("failed to sign token")

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	SessionID      string           `json:"session_id"`
	Email          string           `json:"email"`
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

func (b BaseClaims) session() Session {
	session := Session{ID: b.SessionID, UserID: b.Subject, Email: b.Email}
	if b.ExpirationTime != nil {
		session.ExpiresAt = b.ExpirationTime.Time
	}
	return session
}

// IssueSessionToken signs an access token the way the identity provider does.
// Used by local development sign-in and tests.
func (p *AuthProcessor) IssueSessionToken(ctx context.Context, userID, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 || ttl > maxSessionLifetime {
		ttl = maxSessionLifetime
	}
	now := p.now()
	claims := &BaseClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:       jwt.NewNumericDate(now),
		Subject:        userID,
		SessionID:      uuid.New().String(),
		Email:          email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(p.jwtSecret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}
	return tokenString, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.jwtSecret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(p.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.InfoWithError(ctx, "token expired", err)
			return BaseClaims{}, ErrExpiredToken
		}

		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	claims, ok := t.Claims.(*BaseClaims)
	if !ok {
		return BaseClaims{}, ErrParseJWTToken
	}

	return *claims, nil
}
