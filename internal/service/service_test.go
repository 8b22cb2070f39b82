package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"portfolio/internal/cache"
	"portfolio/internal/database"
	"portfolio/internal/model"
	"portfolio/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	newSessionID = uuid.NewString
	timeNow = time.Now
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	parseWithClaims = jwt.ParseWithClaims
	getActiveAdminByUsername = store.GetActiveAdminByUsername
	getAdminByID = store.GetAdminByID
	touchAdminLastLogin = store.TouchAdminLastLogin
}

func newMemorySessions(ttl time.Duration) *Sessions {
	return NewSessions(cache.NewMemoryCache(time.Minute), "test-secret", ttl)
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)
	require.NoError(t, ComparePassword(hash, "admin123"))
	require.Error(t, ComparePassword(hash, "admin124"))

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("gen") }
	_, err = HashPassword("x")
	require.Error(t, err)
}

func TestSessionsRoundTrip(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	s := newMemorySessions(time.Hour)

	token, err := s.Issue(ctx, model.AdminSummary{ID: 1, Username: "admin"})
	require.NoError(t, err)

	data, err := s.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, 1, data.AdminID)
	require.Equal(t, "admin", data.Username)

	require.NoError(t, s.Revoke(ctx, token))
	_, err = s.Resolve(ctx, token)
	require.ErrorIs(t, err, ErrSessionNotFound)

	// revoking twice is fine
	require.NoError(t, s.Revoke(ctx, token))
}

func TestSessionsIssueStoresEntry(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newSessionID = func() string { return "fixed-id" }

	var key string
	var ttl time.Duration
	var stored []byte
	fc := &cache.FakeCache{SetFn: func(_ context.Context, k string, v any, exp time.Duration) *redis.StatusCmd {
		key, ttl, stored = k, exp, v.([]byte)
		return redis.NewStatusResult("OK", nil)
	}}
	s := NewSessions(fc, "secret", 2*time.Hour)

	token, err := s.Issue(context.Background(), model.AdminSummary{ID: 4, Username: "root"})
	require.NoError(t, err)
	require.Equal(t, "session:fixed-id", key)
	require.Equal(t, 2*time.Hour, ttl)

	var d SessionData
	require.NoError(t, json.Unmarshal(stored, &d))
	require.Equal(t, 4, d.AdminID)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return []byte("secret"), nil })
	require.NoError(t, err)
	require.Equal(t, "fixed-id", claims.ID)
	require.Equal(t, "4", claims.Subject)
}

func TestSessionsIssueErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()

	_, err := NewSessions(&cache.FakeCache{}, "", time.Hour).Issue(ctx, model.AdminSummary{})
	require.Error(t, err)

	jsonMarshal = func(any) ([]byte, error) { return nil, errors.New("json") }
	_, err = newMemorySessions(time.Hour).Issue(ctx, model.AdminSummary{})
	require.ErrorContains(t, err, "json")
	jsonMarshal = json.Marshal

	fc := &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("redis down"))
	}}
	_, err = NewSessions(fc, "s", time.Hour).Issue(ctx, model.AdminSummary{})
	require.ErrorContains(t, err, "redis down")
}

func TestSessionsResolveRejects(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	s := newMemorySessions(time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Resolve(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("foreign secret", func(t *testing.T) {
		other := NewSessions(s.Cache, "other-secret", time.Hour)
		token, err := other.Issue(ctx, model.AdminSummary{ID: 1})
		require.NoError(t, err)
		_, err = s.Resolve(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("alg none", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "x", Issuer: sessionIssuer}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		_, err := s.Resolve(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := s.Issue(ctx, model.AdminSummary{ID: 1})
		require.NoError(t, err)
		timeNow = func() time.Time { return time.Now().Add(2 * time.Hour) }
		t.Cleanup(func() { timeNow = time.Now })
		_, err = s.Resolve(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("valid token without entry", func(t *testing.T) {
		fc := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		s := NewSessions(fc, "s", time.Hour)
		token, err := s.Issue(ctx, model.AdminSummary{ID: 1})
		require.NoError(t, err)
		_, err = s.Resolve(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("store failure is not a missing session", func(t *testing.T) {
		fc := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", errors.New("i/o timeout"))
			},
		}
		s := NewSessions(fc, "s", time.Hour)
		token, _ := s.Issue(ctx, model.AdminSummary{ID: 1})
		_, err := s.Resolve(ctx, token)
		require.ErrorContains(t, err, "i/o timeout")
		require.NotErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		fc := &cache.FakeCache{
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("{", nil)
			},
		}
		s := NewSessions(fc, "s", time.Hour)
		token, _ := s.Issue(ctx, model.AdminSummary{ID: 1})
		_, err := s.Resolve(ctx, token)
		require.Error(t, err)
	})
}

func TestSessionsRevokeError(t *testing.T) {
	t.Cleanup(restoreGlobals)
	fc := &cache.FakeCache{
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("del"))
		},
	}
	s := NewSessions(fc, "s", time.Hour)
	token, _ := s.Issue(context.Background(), model.AdminSummary{ID: 1})
	require.ErrorContains(t, s.Revoke(context.Background(), token), "del")
	require.NoError(t, s.Revoke(context.Background(), "junk"))
}

func TestAuthenticatorLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	admin := &model.AdminUser{ID: 1, Username: "admin", Email: "a@x", PasswordHash: hash, IsActive: true}

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		touched := 0
		getActiveAdminByUsername = func(_ context.Context, _ database.Querier, u string) (*model.AdminUser, error) {
			require.Equal(t, "admin", u)
			a := *admin
			return &a, nil
		}
		touchAdminLastLogin = func(_ context.Context, _ database.Querier, id int) (time.Time, error) {
			touched = id
			return time.Now(), nil
		}
		a := NewAuthenticator(&database.FakeDB{}, newMemorySessions(time.Hour))
		res, err := a.Login(ctx, "admin", "admin123")
		require.NoError(t, err)
		require.Equal(t, model.AdminSummary{ID: 1, Username: "admin", Email: "a@x"}, res.Admin)
		require.NotEmpty(t, res.Token)
		require.Equal(t, 1, touched)

		sess, err := a.Sessions.Resolve(ctx, res.Token)
		require.NoError(t, err)
		require.Equal(t, 1, sess.AdminID)
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		a := NewAuthenticator(&database.FakeDB{}, newMemorySessions(time.Hour))

		getActiveAdminByUsername = func(context.Context, database.Querier, string) (*model.AdminUser, error) {
			return nil, store.ErrNotFound
		}
		_, errUnknown := a.Login(ctx, "ghost", "admin123")

		getActiveAdminByUsername = func(context.Context, database.Querier, string) (*model.AdminUser, error) {
			a := *admin
			return &a, nil
		}
		_, errWrong := a.Login(ctx, "admin", "nope")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getActiveAdminByUsername = func(context.Context, database.Querier, string) (*model.AdminUser, error) {
			return nil, errors.New("db down")
		}
		_, err := NewAuthenticator(&database.FakeDB{}, newMemorySessions(time.Hour)).Login(ctx, "admin", "x")
		require.ErrorContains(t, err, "db down")
		require.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("last login failure", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getActiveAdminByUsername = func(context.Context, database.Querier, string) (*model.AdminUser, error) {
			a := *admin
			return &a, nil
		}
		touchAdminLastLogin = func(context.Context, database.Querier, int) (time.Time, error) {
			return time.Time{}, errors.New("touch")
		}
		_, err := NewAuthenticator(&database.FakeDB{}, newMemorySessions(time.Hour)).Login(ctx, "admin", "admin123")
		require.ErrorContains(t, err, "touch")
	})
}

func TestAuthenticatorIdentify(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions(time.Hour)
	token, err := sessions.Issue(ctx, model.AdminSummary{ID: 1, Username: "admin"})
	require.NoError(t, err)
	a := NewAuthenticator(&database.FakeDB{}, sessions)

	t.Run("active admin", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getAdminByID = func(_ context.Context, _ database.Querier, id int) (*model.AdminUser, error) {
			return &model.AdminUser{ID: id, Username: "admin", Email: "a@x", IsActive: true}, nil
		}
		got, err := a.Identify(ctx, token)
		require.NoError(t, err)
		require.Equal(t, &model.AdminSummary{ID: 1, Username: "admin", Email: "a@x"}, got)
	})

	t.Run("deactivated admin", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getAdminByID = func(_ context.Context, _ database.Querier, id int) (*model.AdminUser, error) {
			return &model.AdminUser{ID: id, IsActive: false}, nil
		}
		_, err := a.Identify(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("deleted admin", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		getAdminByID = func(context.Context, database.Querier, int) (*model.AdminUser, error) {
			return nil, store.ErrNotFound
		}
		_, err := a.Identify(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := a.Identify(ctx, "")
		require.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("logout revokes", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		require.NoError(t, a.Logout(ctx, ""))
		require.NoError(t, a.Logout(ctx, token))
		_, err := a.Identify(ctx, token)
		require.ErrorIs(t, err, ErrSessionNotFound)
		require.False(t, strings.Contains(err.Error(), "admin"))
	})
}
