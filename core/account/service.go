package account

import (
	"context"
	"log/slog"

	"github.com/gemshop/storefront/core/client"
	"github.com/gemshop/storefront/core/logger"
	"github.com/gemshop/storefront/core/session"
)

// Service handles authentication and profile operations.
type Service struct {
	api      *client.Client
	sessions session.Store
	log      *slog.Logger
}

// Option configures the account service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates an account service. The session store must be the same
// one the executor reads from, or logins will not take effect.
func NewService(api *client.Client, sessions session.Store, opts ...Option) *Service {
	s := &Service{api: api, sessions: sessions, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type authResponse struct {
	Token        string  `json:"token"`
	RefreshToken string  `json:"refreshToken"`
	User         Profile `json:"user"`
}

func (r authResponse) user() session.User {
	return session.User{ID: r.User.ID, Name: r.User.Name, Email: r.User.Email}
}

// Login authenticates the customer and installs the session.
// A rejected login surfaces the server's message as an *client.APIError;
// no refresh is attempted because the request carries no session.
func (s *Service) Login(ctx context.Context, creds Credentials) (session.Session, error) {
	if creds.Email == "" {
		return session.Session{}, ErrMissingEmail
	}
	if creds.Password == "" {
		return session.Session{}, ErrMissingPassword
	}

	var resp authResponse
	if err := s.api.Do(ctx, client.Post("/auth/login", creds).Public(), &resp); err != nil {
		return session.Session{}, err
	}

	sess, err := session.New(resp.Token, resp.RefreshToken, resp.user())
	if err != nil {
		return session.Session{}, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}

	s.log.InfoContext(ctx, "logged in", logger.Component("account"), slog.String("user_id", sess.User.ID))
	return sess, nil
}

// Register creates an account and installs the returned session.
func (s *Service) Register(ctx context.Context, reg Registration) (session.Session, error) {
	if reg.Name == "" {
		return session.Session{}, ErrMissingName
	}
	if reg.Email == "" {
		return session.Session{}, ErrMissingEmail
	}
	if reg.Password == "" {
		return session.Session{}, ErrMissingPassword
	}

	var resp authResponse
	if err := s.api.Do(ctx, client.Post("/auth/register", reg).Public(), &resp); err != nil {
		return session.Session{}, err
	}

	sess, err := session.New(resp.Token, resp.RefreshToken, resp.user())
	if err != nil {
		return session.Session{}, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}

	s.log.InfoContext(ctx, "registered", logger.Component("account"), slog.String("user_id", sess.User.ID))
	return sess, nil
}

// Logout destroys the local session. It never calls the network: the server
// holds no session state worth invalidating from the client.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Profile fetches the authenticated profile and refreshes the cached copy
// in the session store.
func (s *Service) Profile(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := s.api.Do(ctx, client.Get("/auth/profile"), &profile); err != nil {
		return Profile{}, err
	}

	s.cacheProfile(ctx, profile)
	return profile, nil
}

// UpdateProfile saves profile changes and refreshes the cached copy.
func (s *Service) UpdateProfile(ctx context.Context, profile Profile) (Profile, error) {
	if profile.Name == "" {
		return Profile{}, ErrMissingName
	}
	if profile.Email == "" {
		return Profile{}, ErrMissingEmail
	}

	var updated Profile
	if err := s.api.Do(ctx, client.Put("/auth/profile", profile), &updated); err != nil {
		return Profile{}, err
	}

	s.cacheProfile(ctx, updated)
	return updated, nil
}

// ForgotPassword requests a password reset email.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingEmail
	}
	body := map[string]string{"email": email}
	return s.api.Do(ctx, client.Post("/auth/forgot-password", body).Public(), nil)
}

// ResetPassword completes a password reset with the emailed token.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return ErrMissingToken
	}
	if password == "" {
		return ErrMissingPassword
	}
	body := map[string]string{"password": password}
	return s.api.Do(ctx, client.Post("/auth/reset-password/"+token, body).Public(), nil)
}

// Current returns the locally stored session without touching the network.
func (s *Service) Current(ctx context.Context) (session.Session, error) {
	return s.sessions.Load(ctx)
}

func (s *Service) cacheProfile(ctx context.Context, profile Profile) {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		return
	}
	updated := sess.WithUser(session.User{ID: profile.ID, Name: profile.Name, Email: profile.Email})
	if err := s.sessions.Save(ctx, updated); err != nil {
		s.log.WarnContext(ctx, "failed to cache profile", logger.Component("account"), logger.Error(err))
	}
}
