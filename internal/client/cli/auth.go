package cli

import (
	"context"
	"errors"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/router"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

const (
	msgLoginFailed   = "Email or password is incorrect. Please try again."
	msgLoginInactive = "User is inactive to login. Please contact support."
)

var (
	signupFields = []formField{
		{Name: "firstName", Label: "First name"},
		{Name: "lastName", Label: "Last name"},
		{Name: "email", Label: "Email"},
	}
	loginFields = []formField{
		{Name: "email", Label: "Email"},
		{Name: "password", Label: "Password", Kind: passwordField},
	}
	forgotFields = []formField{
		{Name: "email", Label: "Email"},
	}
	passwordFields = []formField{
		{Name: "password", Label: "New password", Kind: passwordField, Strength: true},
		{Name: "confirmPassword", Label: "Confirm password", Kind: passwordField},
	}
)

// Signup registers a new account. The password is chosen later through the
// emailed setup link.
func (a *App) Signup(ctx context.Context) error {
	v, err := a.fill("Create an account", validation.SignupSchema, signupFields, a.kept(router.Signup))
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	msg, err := a.auth.Signup(ctx, models.RegisterInput{
		FirstName: v["firstName"],
		LastName:  v["lastName"],
		Email:     v["email"],
	})
	if err != nil {
		a.keep(router.Signup, v)
		a.report(ctx, err, "Registration failed. Please try again.")
		return err
	}
	a.forget(router.Signup)
	a.toast.Success(orDefault(msg, "Registration successful. Please check your email to set your password."))
	return a.open(ctx, router.PathLogin, false)
}

func (a *App) Login(ctx context.Context) error {
	v, err := a.fill("Sign in", validation.LoginSchema, loginFields, a.kept(router.Login))
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	s, err := a.auth.Login(ctx, models.LoginInput{Email: v["email"], Password: v["password"]})
	if err != nil {
		a.keep(router.Login, v)
		a.loginFailed(ctx, err)
		return err
	}
	a.forget(router.Login)
	a.log.Info(ctx, "signed in", "user", s.User.ID, "role", s.User.Role)
	a.toast.Success("Login successful")
	return a.open(ctx, router.PathArticles, false)
}

func (a *App) loginFailed(ctx context.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		a.report(ctx, err, "")
	case errors.Is(err, common.ErrForbidden):
		a.toast.Error(msgLoginInactive)
	case errors.Is(err, common.ErrUnavailable):
		a.toast.Error(client.Message(err, "Server is unavailable. Please try again later."))
	default:
		a.log.Debug(ctx, "login failed", "error", err)
		a.toast.Error(client.Message(err, msgLoginFailed))
	}
}

// Logout forgets the session and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	a.unmount()
	if err := a.auth.Logout(ctx); err != nil {
		a.report(ctx, err, "Logout failed")
		return err
	}
	a.toast.Info("You have been logged out.")
	return a.open(ctx, router.PathLogin, false)
}

func (a *App) ForgotPassword(ctx context.Context) error {
	v, err := a.fill("Forgot password", validation.ForgotPasswordSchema, forgotFields, a.kept(router.ForgotPassword))
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	msg, err := a.auth.ForgotPassword(ctx, v["email"])
	if err != nil {
		a.keep(router.ForgotPassword, v)
		a.report(ctx, err, "Something went wrong. Please try again.")
		return err
	}
	a.forget(router.ForgotPassword)
	a.toast.Success(orDefault(msg, "Password reset link sent to your email."))
	return a.open(ctx, router.PathLogin, false)
}

// ResetPassword completes the forgot-password link.
func (a *App) ResetPassword(ctx context.Context, token string) error {
	return a.passwordLink(ctx, "Reset password", token, a.auth.ResetPassword, "Password reset successfully.")
}

// SetupPassword completes the first-login link sent after signup or after an
// admin created the account.
func (a *App) SetupPassword(ctx context.Context, token string) error {
	return a.passwordLink(ctx, "Set up your password", token, a.auth.SetupPassword, "Password set successfully. You can now log in.")
}

type passwordCall func(ctx context.Context, token string, in models.PasswordInput) (string, error)

func (a *App) passwordLink(ctx context.Context, title, token string, call passwordCall, done string) error {
	v, err := a.fill(title, validation.PasswordSchema, passwordFields, nil)
	if err != nil {
		a.report(ctx, err, "")
		return err
	}
	msg, err := call(ctx, token, models.PasswordInput{Password: v["password"], ConfirmPassword: v["confirmPassword"]})
	if err != nil {
		a.report(ctx, err, "Invalid or expired link. Please request a new one.")
		return err
	}
	a.toast.Success(orDefault(msg, done))
	return a.open(ctx, router.PathLogin, false)
}

// keep remembers a failed form's input so the next attempt starts from it.
// Passwords are never kept.
func (a *App) keep(form string, v validation.Values) {
	saved := validation.Values{}
	for k, val := range v {
		if k == "password" || k == "confirmPassword" {
			continue
		}
		saved[k] = val
	}
	a.mu.Lock()
	if a.drafts == nil {
		a.drafts = map[string]validation.Values{}
	}
	a.drafts[form] = saved
	a.mu.Unlock()
}

func (a *App) kept(form string) validation.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.drafts[form]
}

func (a *App) forget(form string) {
	a.mu.Lock()
	delete(a.drafts, form)
	a.mu.Unlock()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
