package common

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"framework4future/portal/internal/auth"
	"framework4future/portal/internal/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

// TokenSigner issues and validates member bearer tokens. Revoked token ids are
// remembered in the cache until the token would have expired anyway.
type TokenSigner struct {
	secretKey []byte
	ttl       time.Duration
	cache     CacheInterface
}

// NewTokenSigner falls back to a random per-process key when secretKey is
// empty, so tokens never verify against a guessable secret.
func NewTokenSigner(secretKey []byte, ttl time.Duration, cache CacheInterface) *TokenSigner {
	if len(secretKey) == 0 {
		secretKey = make([]byte, 32)
		_, _ = rand.Read(secretKey)
	}
	if ttl <= 0 {
		ttl = constants.DefaultTokenLifetime
	}
	return &TokenSigner{
		secretKey: secretKey,
		ttl:       ttl,
		cache:     cache,
	}
}

// Issue signs a token for the member.
func (s *TokenSigner) Issue(memberID, email string, isAdmin bool) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"member_id": memberID,
		"email":     email,
		"is_admin":  isAdmin,
		"jti":       uuid.New().String(),
		"exp":       expiresAt.Unix(),
		"iat":       now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses tokenString and returns its claims.
func (s *TokenSigner) Validate(tokenString string) (*auth.MemberClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	memberID, ok := (*claims)["member_id"].(string)
	if !ok || memberID == "" {
		return nil, fmt.Errorf("%w: missing member_id claim", ErrInvalidToken)
	}

	tokenID, ok := (*claims)["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing jti claim", ErrInvalidToken)
	}

	expFloat, ok := (*claims)["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: missing exp claim", ErrInvalidToken)
	}

	email, _ := (*claims)["email"].(string)
	isAdmin, _ := (*claims)["is_admin"].(bool)

	if s.cache != nil {
		if _, revoked := s.cache.Get(revokedKey(tokenID)); revoked {
			return nil, ErrTokenRevoked
		}
	}

	return &auth.MemberClaims{
		MemberUUID:   memberID,
		EmailValue:   email,
		Admin:        isAdmin,
		JTI:          tokenID,
		ExpiresValue: time.Unix(int64(expFloat), 0),
	}, nil
}

// Revoke invalidates the token for the rest of its lifetime.
func (s *TokenSigner) Revoke(claims auth.UserClaims) {
	if s.cache == nil || claims == nil {
		return
	}
	ttl := time.Until(claims.ExpiresAt())
	if ttl <= 0 {
		return
	}
	s.cache.Set(revokedKey(claims.TokenID()), true, ttl)
}

func revokedKey(tokenID string) string {
	return string(constants.CachePrefixRevokedToken) + tokenID
}
