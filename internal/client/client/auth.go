package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterInput) (string, error) {
	body, err := c.doJSON(ctx, http.MethodPost, c.endpoint("/auth/register", nil), in)
	if err != nil {
		return "", err
	}
	return decodeMessage(body), nil
}

func (c *HTTPClient) Login(ctx context.Context, in models.LoginInput) (models.AuthResult, error) {
	body, err := c.doJSON(ctx, http.MethodPost, c.endpoint("/auth/login", nil), in)
	if err != nil {
		return models.AuthResult{}, err
	}
	res, err := decodeData[models.AuthResult](body)
	if err != nil {
		return models.AuthResult{}, err
	}
	if res.Token == "" {
		return models.AuthResult{}, ErrEmptyData
	}
	return res, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	body, err := c.doJSON(ctx, http.MethodPost, c.endpoint("/auth/forgot-password", nil), map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	return decodeMessage(body), nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token string, in models.PasswordInput) (string, error) {
	return c.postPassword(ctx, "/auth/reset-password/", token, in)
}

func (c *HTTPClient) SetupPassword(ctx context.Context, token string, in models.PasswordInput) (string, error) {
	return c.postPassword(ctx, "/auth/setup-password/", token, in)
}

func (c *HTTPClient) postPassword(ctx context.Context, prefix, token string, in models.PasswordInput) (string, error) {
	body, err := c.doJSON(ctx, http.MethodPost, c.endpoint(prefix+url.PathEscape(token), nil), in)
	if err != nil {
		return "", err
	}
	return decodeMessage(body), nil
}
