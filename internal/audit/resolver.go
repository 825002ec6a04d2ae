package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/easybank/easybank-services/internal/config"
	"github.com/easybank/easybank-services/internal/platform/logger"
)

// Resolver determines the actor for a request from its Authorization
// header value, which may be empty.
type Resolver interface {
	Resolve(ctx context.Context, authorization string) (Actor, error)
}

// StaticResolver always resolves to a fixed system identity.
type StaticResolver struct {
	actor Actor
}

var _ Resolver = StaticResolver{}

// NewStaticResolver returns a resolver answering with actor.
func NewStaticResolver(actor Actor) (StaticResolver, error) {
	if !actor.Valid() {
		return StaticResolver{}, fmt.Errorf("%w: %q", ErrInvalidActor, actor)
	}
	return StaticResolver{actor: actor}, nil
}

// Resolve ignores the header and returns the system identity.
func (s StaticResolver) Resolve(_ context.Context, _ string) (Actor, error) {
	return s.actor, nil
}

// TokenResolver reads an optional "Bearer <jwt>" header. A valid HS256
// token's subject becomes the actor; requests without a header fall back
// to the system identity.
type TokenResolver struct {
	signingKey []byte
	fallback   StaticResolver
	clockSkew  time.Duration
	timeFunc   func() time.Time
}

var _ Resolver = (*TokenResolver)(nil)

// NewTokenResolver creates a TokenResolver. secret must be at least 32 bytes.
func NewTokenResolver(secret string, fallback StaticResolver) (*TokenResolver, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return &TokenResolver{
		signingKey: []byte(secret),
		fallback:   fallback,
		clockSkew:  2 * time.Minute,
		timeFunc:   time.Now,
	}, nil
}

// Resolve implements Resolver.
func (t *TokenResolver) Resolve(ctx context.Context, authorization string) (Actor, error) {
	if authorization == "" {
		return t.fallback.Resolve(ctx, authorization)
	}

	scheme, token, ok := strings.Cut(authorization, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidAuthorization
	}

	return t.parse(ctx, token)
}

func (t *TokenResolver) parse(ctx context.Context, tokenString string) (Actor, error) {
	log := logger.FromContext(ctx)
	now := t.timeFunc()

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return t.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(t.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("actor token expired", slog.String("error", err.Error()))
			return "", ErrExpiredToken
		}
		log.Debug("actor token rejected", slog.String("error", err.Error()))
		return "", ErrInvalidToken
	}

	actor := Actor(claims.Subject)
	if !actor.Valid() {
		log.Debug("actor token has unusable subject", slog.Int("subject_length", len(claims.Subject)))
		return "", ErrInvalidActor
	}

	return actor, nil
}

// IssueToken signs an HS256 token naming subject, valid for ttl.
// It exists for operators and tests; the services only verify tokens.
func IssueToken(secret string, subject Actor, ttl time.Duration, now time.Time) (string, error) {
	if !subject.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidActor, subject)
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign actor token: %w", err)
	}
	return signed, nil
}

// NewResolver builds the resolver described by cfg: a TokenResolver when a
// JWT secret is configured, otherwise a StaticResolver.
func NewResolver(cfg config.AuditConfig) (Resolver, error) {
	static, err := NewStaticResolver(Actor(cfg.SystemActor))
	if err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return static, nil
	}
	tokens, err := NewTokenResolver(cfg.JWTSecret, static)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
