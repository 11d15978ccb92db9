package auth

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

type fakeAPI struct {
	calls []string

	registerErr error
	token       string
	loginErr    error
}

func (f *fakeAPI) Register(username, email, password string) error {
	f.calls = append(f.calls, "register")
	return f.registerErr
}

func (f *fakeAPI) Login(username, password string) (string, error) {
	f.calls = append(f.calls, "login")
	return f.token, f.loginErr
}

type fakeStore struct {
	token string
	set   bool
}

func (f *fakeStore) Set(token string) error {
	f.token = token
	f.set = true
	return nil
}

func TestAuthenticateLoginStoresToken(t *testing.T) {
	api := &fakeAPI{token: "tok123"}
	store := &fakeStore{}

	flow := NewFlow(api, store, zap.NewNop())

	token, err := flow.Authenticate(ModeLogin, Credentials{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if token != "tok123" {
		t.Fatalf("unexpected token: %q", token)
	}
	if !store.set || store.token != "tok123" {
		t.Fatalf("expected token stored, got %+v", store)
	}
	if len(api.calls) != 1 || api.calls[0] != "login" {
		t.Fatalf("unexpected calls: %v", api.calls)
	}
}

func TestAuthenticateRegisterRunsBothInSequence(t *testing.T) {
	api := &fakeAPI{token: "tok123"}
	store := &fakeStore{}

	flow := NewFlow(api, store, zap.NewNop())

	if _, err := flow.Authenticate(ModeRegister, Credentials{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(api.calls) != 2 || api.calls[0] != "register" || api.calls[1] != "login" {
		t.Fatalf("unexpected call order: %v", api.calls)
	}
}

func TestAuthenticateRegisterFailureStopsFlow(t *testing.T) {
	api := &fakeAPI{registerErr: errors.New("username taken")}
	store := &fakeStore{}

	flow := NewFlow(api, store, zap.NewNop())

	_, err := flow.Authenticate(ModeRegister, Credentials{Username: "alice", Password: "secret"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(api.calls) != 1 || api.calls[0] != "register" {
		t.Fatalf("login must not be attempted after failed registration, calls: %v", api.calls)
	}
	if store.set {
		t.Fatal("no token may be stored on failure")
	}
}

func TestAuthenticateRejectsMissingCredentials(t *testing.T) {
	flow := NewFlow(&fakeAPI{}, &fakeStore{}, zap.NewNop())

	if _, err := flow.Authenticate(ModeLogin, Credentials{Username: "alice"}); err == nil {
		t.Fatal("expected error for missing password")
	}
}

func TestAuthenticateRejectsUnknownMode(t *testing.T) {
	api := &fakeAPI{}
	flow := NewFlow(api, &fakeStore{}, zap.NewNop())

	if _, err := flow.Authenticate(Mode("refresh"), Credentials{Username: "alice", Password: "secret"}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if len(api.calls) != 0 {
		t.Fatalf("no network calls expected, got %v", api.calls)
	}
}
