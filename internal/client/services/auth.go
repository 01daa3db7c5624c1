package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
)

var ErrMissingToken = errors.New("Invalid or missing token. Please use the link from your email.")

// AuthService covers account creation, login/logout and password links.
type AuthService interface {
	Signup(ctx context.Context, in models.RegisterInput) (string, error)
	Login(ctx context.Context, in models.LoginInput) (session.Session, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token string, in models.PasswordInput) (string, error)
	SetupPassword(ctx context.Context, token string, in models.PasswordInput) (string, error)
	Current(ctx context.Context) (session.Session, error)
}

type authService struct {
	client client.Client
	store  SessionStore
}

func NewAuthService(c client.Client, store SessionStore) AuthService {
	return &authService{client: c, store: store}
}

func (a *authService) Signup(ctx context.Context, in models.RegisterInput) (string, error) {
	v, err := check(validation.SignupSchema, validation.Values{
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"email":     in.Email,
	})
	if err != nil {
		return "", err
	}
	msg, err := a.client.Register(ctx, models.RegisterInput{FirstName: v["firstName"], LastName: v["lastName"], Email: v["email"]})
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return msg, nil
}

// Login authenticates and replaces the stored session. The user's id and
// role fall back to the token claims when the response omits them.
func (a *authService) Login(ctx context.Context, in models.LoginInput) (session.Session, error) {
	v, err := check(validation.LoginSchema, validation.Values{"email": in.Email, "password": in.Password})
	if err != nil {
		return session.Session{}, err
	}

	res, err := a.client.Login(ctx, models.LoginInput{Email: v["email"], Password: v["password"]})
	if err != nil {
		return session.Session{}, fmt.Errorf("login: %w", err)
	}

	s := session.Session{Token: res.Token, User: res.User}
	if claims, err := session.ParseClaims(res.Token); err == nil {
		if s.User.ID == "" {
			s.User.ID = claims.UserID
		}
		if s.User.Role == "" {
			s.User.Role = claims.Role
		}
	}
	if err := a.store.Update(ctx, s); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	v, err := check(validation.ForgotPasswordSchema, validation.Values{"email": email})
	if err != nil {
		return "", err
	}
	msg, err := a.client.ForgotPassword(ctx, v["email"])
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	return msg, nil
}

func (a *authService) ResetPassword(ctx context.Context, token string, in models.PasswordInput) (string, error) {
	return a.passwordLink(ctx, token, in, a.client.ResetPassword)
}

func (a *authService) SetupPassword(ctx context.Context, token string, in models.PasswordInput) (string, error) {
	return a.passwordLink(ctx, token, in, a.client.SetupPassword)
}

type passwordCall func(ctx context.Context, token string, in models.PasswordInput) (string, error)

func (a *authService) passwordLink(ctx context.Context, token string, in models.PasswordInput, call passwordCall) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}
	if _, err := check(validation.PasswordSchema, validation.Values{
		"password":        in.Password,
		"confirmPassword": in.ConfirmPassword,
	}); err != nil {
		return "", err
	}
	msg, err := call(ctx, token, in)
	if err != nil {
		return "", fmt.Errorf("set password: %w", err)
	}
	return msg, nil
}

func (a *authService) Current(ctx context.Context) (session.Session, error) {
	return a.store.Get(ctx)
}
