package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

func (c *HTTPClient) ListArticles(ctx context.Context, p ListParams) (models.ArticlePage, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint("/article/allArticles", &p), nil, "")
	if err != nil {
		return models.ArticlePage{}, err
	}
	page, err := decodeData[models.ArticlePage](body)
	if errors.Is(err, ErrEmptyData) {
		return models.ArticlePage{}, nil
	}
	return page, err
}

func (c *HTTPClient) GetArticle(ctx context.Context, id string) (models.Article, error) {
	body, err := c.do(ctx, http.MethodGet, c.endpoint("/article/Articles/"+url.PathEscape(id), nil), nil, "")
	if err != nil {
		return models.Article{}, err
	}
	return decodeData[models.Article](body)
}

func (c *HTTPClient) CreateArticle(ctx context.Context, in models.ArticleInput) (models.Article, error) {
	form, contentType, err := articleForm(in, false)
	if err != nil {
		return models.Article{}, err
	}
	body, err := c.do(ctx, http.MethodPost, c.endpoint("/article/createArticle", nil), form, contentType)
	if err != nil {
		return models.Article{}, err
	}
	return decodeData[models.Article](body)
}

func (c *HTTPClient) UpdateArticle(ctx context.Context, id string, in models.ArticleInput) (models.Article, error) {
	form, contentType, err := articleForm(in, true)
	if err != nil {
		return models.Article{}, err
	}
	body, err := c.do(ctx, http.MethodPut, c.endpoint("/article/articles/"+url.PathEscape(id), nil), form, contentType)
	if err != nil {
		return models.Article{}, err
	}
	return decodeData[models.Article](body)
}

func (c *HTTPClient) DeleteArticle(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.endpoint("/article/articles/"+url.PathEscape(id), nil), nil, "")
	return err
}
