// Package auth runs the composite authentication flow and feeds the
// credential store with the resulting token.
package auth

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type Mode string

const (
	ModeLogin    Mode = "login"
	ModeRegister Mode = "register"
)

// Credentials are the user-supplied inputs. Email is only used when
// registering and may be empty.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// API is the slice of the backend client the flow needs.
type API interface {
	Register(username, email, password string) error
	Login(username, password string) (string, error)
}

// TokenStore persists the token on successful login.
type TokenStore interface {
	Set(token string) error
}

type Flow struct {
	api    API
	store  TokenStore
	logger *zap.Logger
}

func NewFlow(api API, store TokenStore, logger *zap.Logger) *Flow {
	return &Flow{api: api, store: store, logger: logger}
}

// Authenticate runs register-then-login or login alone, depending on mode.
// A failed registration stops the flow: login is not attempted. On success
// the token is stored and returned.
func (f *Flow) Authenticate(mode Mode, creds Credentials) (string, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", errors.New("username and password are required")
	}

	switch mode {
	case ModeRegister:
		if err := f.api.Register(creds.Username, creds.Email, creds.Password); err != nil {
			return "", err
		}
		f.logger.Info("registered", zap.String("username", creds.Username))
	case ModeLogin:
	default:
		return "", fmt.Errorf("unknown authentication mode: %s", mode)
	}

	token, err := f.api.Login(creds.Username, creds.Password)
	if err != nil {
		return "", err
	}

	if err := f.store.Set(token); err != nil {
		return "", fmt.Errorf("storing token: %w", err)
	}

	f.logger.Info("logged in", zap.String("username", creds.Username))

	return token, nil
}
