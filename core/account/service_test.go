package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemshop/storefront/core/account"
	"github.com/gemshop/storefront/core/client"
	"github.com/gemshop/storefront/core/session"
)

func newService(t *testing.T, handler http.Handler) (*account.Service, *session.MemoryStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	api, err := client.New(client.Config{BaseURL: srv.URL}, store)
	require.NoError(t, err)

	return account.NewService(api, store), store
}

func respond(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func authBody(token string) map[string]any {
	return map[string]any{
		"token":        token,
		"refreshToken": "refresh-1",
		"user":         map[string]string{"_id": "u1", "name": "Priya", "email": "priya@example.com"},
	}
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	t.Run("installs session on success", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Empty(t, r.Header.Get("Authorization"), "login request carries no bearer token")

			var creds account.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "priya@example.com", creds.Email)

			respond(t, w, http.StatusOK, authBody("access-1"))
		}))

		sess, err := svc.Login(context.Background(), account.Credentials{
			Email:    "priya@example.com",
			Password: "secret",
		})
		require.NoError(t, err)

		assert.True(t, sess.IsAuthenticated())
		assert.Equal(t, "Priya", sess.User.Name)

		stored, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "access-1", stored.AccessToken)
		assert.Equal(t, "refresh-1", stored.RefreshToken)
	})

	t.Run("rejected credentials surface the server message", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		}))

		_, err := svc.Login(context.Background(), account.Credentials{Email: "a@b.c", Password: "wrong"})

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "invalid credentials", apiErr.Message)
		assert.NotErrorIs(t, err, client.ErrUnauthenticated, "no refresh dance on a public request")

		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, session.ErrNotFound, "no session installed")
	})

	t.Run("missing fields rejected locally", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		_, err := svc.Login(context.Background(), account.Credentials{Password: "secret"})
		assert.ErrorIs(t, err, account.ErrMissingEmail)

		_, err = svc.Login(context.Background(), account.Credentials{Email: "a@b.c"})
		assert.ErrorIs(t, err, account.ErrMissingPassword)

		assert.Zero(t, calls.Load())
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	t.Run("installs session on success", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/register", r.URL.Path)
			respond(t, w, http.StatusCreated, authBody("access-1"))
		}))

		sess, err := svc.Register(context.Background(), account.Registration{
			Name:     "Priya",
			Email:    "priya@example.com",
			Password: "secret",
		})
		require.NoError(t, err)
		assert.True(t, sess.IsAuthenticated())

		stored, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "u1", stored.User.ID)
	})

	t.Run("missing name rejected locally", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected network call")
		}))

		_, err := svc.Register(context.Background(), account.Registration{Email: "a@b.c", Password: "x"})
		assert.ErrorIs(t, err, account.ErrMissingName)
	})
}

func TestService_Logout(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	sess, err := session.New("access-1", "refresh-1", session.User{ID: "u1"})
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), sess))

	require.NoError(t, svc.Logout(context.Background()))

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.Zero(t, calls.Load(), "logout is purely local")

	assert.NoError(t, svc.Logout(context.Background()), "logging out twice is a no-op")
}

func TestService_Profile(t *testing.T) {
	t.Parallel()

	t.Run("fetch updates cached user", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/auth/profile", r.URL.Path)
			assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
			respond(t, w, http.StatusOK, map[string]string{
				"_id": "u1", "name": "Priya Sharma", "email": "priya@example.com",
			})
		}))

		sess, err := session.New("access-1", "refresh-1", session.User{ID: "u1", Name: "Priya"})
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sess))

		profile, err := svc.Profile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", profile.Name)

		stored, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", stored.User.Name, "cached profile refreshed")
	})

	t.Run("update round-trips through the API", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "PUT", r.Method)

			var body account.Profile
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			respond(t, w, http.StatusOK, map[string]string{
				"_id": "u1", "name": body.Name, "email": body.Email,
			})
		}))

		sess, err := session.New("access-1", "refresh-1", session.User{ID: "u1"})
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sess))

		updated, err := svc.UpdateProfile(context.Background(), account.Profile{
			Name:  "Priya S",
			Email: "priya@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "Priya S", updated.Name)

		stored, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Priya S", stored.User.Name)
	})

	t.Run("anonymous client gets ErrUnauthenticated without network call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		_, err := svc.Profile(context.Background())
		assert.ErrorIs(t, err, client.ErrUnauthenticated)
		assert.Zero(t, calls.Load())
	})

	t.Run("expired token refreshes then fetches", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("POST /auth/refresh-token", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refreshToken"])
			respond(t, w, http.StatusOK, map[string]string{"token": "access-2"})
		})
		mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer access-2" {
				respond(t, w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
				return
			}
			respond(t, w, http.StatusOK, map[string]string{"_id": "u1", "name": "Priya", "email": "p@e.c"})
		})

		svc, store := newService(t, mux)

		sess, err := session.New("access-1", "refresh-1", session.User{ID: "u1"})
		require.NoError(t, err)
		require.NoError(t, store.Save(context.Background(), sess))

		profile, err := svc.Profile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Priya", profile.Name)

		stored, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "access-2", stored.AccessToken)
	})
}

func TestService_PasswordReset(t *testing.T) {
	t.Parallel()

	t.Run("forgot password posts the email", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/forgot-password", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "priya@example.com", body["email"])
			respond(t, w, http.StatusOK, map[string]string{"message": "email sent"})
		}))

		require.NoError(t, svc.ForgotPassword(context.Background(), "priya@example.com"))
		assert.ErrorIs(t, svc.ForgotPassword(context.Background(), ""), account.ErrMissingEmail)
	})

	t.Run("reset password targets the token path", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/reset-password/tok-123", r.URL.Path)
			respond(t, w, http.StatusOK, map[string]string{"message": "password updated"})
		}))

		require.NoError(t, svc.ResetPassword(context.Background(), "tok-123", "newpass"))
		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "", "newpass"), account.ErrMissingToken)
		assert.ErrorIs(t, svc.ResetPassword(context.Background(), "tok-123", ""), account.ErrMissingPassword)
	})
}
