// File: internal/service/session.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound covers every token that does not lead to a live session:
// bad signature, expired, revoked or never issued.
var ErrSessionNotFound = errors.New("session not found")

const (
	sessionKeyPrefix = "session:"
	sessionIssuer    = "portfolio"
)

var (
	newSessionID    = uuid.NewString
	timeNow         = time.Now
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
	parseWithClaims = jwt.ParseWithClaims
)

// SessionData is the server-side record behind a session token.
type SessionData struct {
	AdminID  int       `json:"admin_id"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

// Sessions issues and resolves admin sessions. The token handed to the
// client is an HS256 JWT whose jti names the entry in Cache; the admin
// identity is only ever read from that entry.
type Sessions struct {
	Cache  cache.Cache
	Secret []byte
	TTL    time.Duration
}

func NewSessions(c cache.Cache, secret string, ttl time.Duration) *Sessions {
	return &Sessions{Cache: c, Secret: []byte(secret), TTL: ttl}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

// Issue stores a new session for admin and returns the signed token.
func (s *Sessions) Issue(ctx context.Context, admin model.AdminSummary) (string, error) {
	if len(s.Secret) == 0 {
		return "", fmt.Errorf("Issue: empty session secret")
	}
	now := timeNow()
	id := newSessionID()

	data, err := jsonMarshal(SessionData{AdminID: admin.ID, Username: admin.Username, IssuedAt: now.UTC()})
	if err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(id), data, s.TTL).Err(); err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        id,
		Issuer:    sessionIssuer,
		Subject:   fmt.Sprint(admin.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("Issue: %w", err)
	}
	return token, nil
}

// sessionID verifies the token signature and returns its jti.
func (s *Sessions) sessionID(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := parseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithTimeFunc(timeNow))
	if err != nil || !parsed.Valid || claims.ID == "" {
		return "", ErrSessionNotFound
	}
	return claims.ID, nil
}

// Resolve returns the session behind token. Unknown or tampered tokens give
// ErrSessionNotFound; store failures are returned as-is.
func (s *Sessions) Resolve(ctx context.Context, token string) (*SessionData, error) {
	id, err := s.sessionID(token)
	if err != nil {
		return nil, err
	}
	raw, err := s.Cache.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}
	var data SessionData
	if err := jsonUnmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("Resolve: %w", err)
	}
	return &data, nil
}

// Revoke deletes the session behind token. Revoking an invalid or already
// revoked token is not an error.
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	id, err := s.sessionID(token)
	if err != nil {
		return nil
	}
	if err := s.Cache.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("Revoke: %w", err)
	}
	return nil
}
