package api

import (
	"context"
	"sync"

	"github.com/AbbasAliNaqvi/FoodForConferencesGo/internal/domain"
	apperrors "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/errors"
)

// StaticTokenSource holds a bearer token in memory. Tokens are not persisted
// across process restarts; a session logs in again on start.
type StaticTokenSource struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenSource creates a token source, optionally pre-seeded.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the current bearer token, or "" when logged out.
func (s *StaticTokenSource) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the stored token.
func (s *StaticTokenSource) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear drops the stored token, logging the session out.
func (s *StaticTokenSource) Clear() { s.Set("") }

// Session is a successful authentication result.
type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// AuthClient talks to the /auth endpoints.
type AuthClient struct {
	c *Client
}

// Login authenticates with email and password.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, apperrors.InvalidInput("email and password are required")
	}

	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var session Session
	if err := a.c.post(ctx, "/auth/login", "login", payload, &session); err != nil {
		return nil, err
	}
	if session.Token == "" {
		return nil, apperrors.Unauthorized("login succeeded but no token was issued")
	}
	return &session, nil
}

// Register creates a new account and returns its session.
func (a *AuthClient) Register(ctx context.Context, name, email, password, role string) (*Session, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.InvalidInput("name, email and password are required")
	}
	if role == "" {
		role = domain.RoleAttendee
	}

	payload := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}{Name: name, Email: email, Password: password, Role: role}

	var session Session
	if err := a.c.post(ctx, "/auth/register", "register", payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
