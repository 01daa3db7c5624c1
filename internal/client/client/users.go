package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

func (c *HTTPClient) ListUsers(ctx context.Context, p ListParams) ([]models.User, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint("/user/all", &p), nil, "")
	if err != nil {
		return nil, err
	}
	users, err := decodeData[[]models.User](body)
	if errors.Is(err, ErrEmptyData) {
		return nil, nil
	}
	return users, err
}

func (c *HTTPClient) GetUser(ctx context.Context, id string) (models.User, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint("/user/"+url.PathEscape(id), nil), nil, "")
	if err != nil {
		return models.User{}, err
	}
	return decodeData[models.User](body)
}

func (c *HTTPClient) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	body, err := c.doJSON(ctx, http.MethodPost, c.endpoint("/user/create", nil), in)
	if err != nil {
		return models.User{}, err
	}
	return decodeData[models.User](body)
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, in models.UserInput) (models.User, error) {
	body, err := c.doJSON(ctx, http.MethodPut, c.endpoint("/user/"+url.PathEscape(id), nil), in)
	if err != nil {
		return models.User{}, err
	}
	return decodeData[models.User](body)
}

func (c *HTTPClient) ToggleUserStatus(ctx context.Context, id string) (string, error) {
	body, err := c.do(ctx, http.MethodPatch, c.endpoint("/user/status/"+url.PathEscape(id), nil), nil, "")
	if err != nil {
		return "", err
	}
	return decodeMessage(body), nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.endpoint("/user/"+url.PathEscape(id), nil), nil, "")
	return err
}
