package client

import (
	"context"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

// Client is the backend contract used by the services.
type Client interface {
	Register(ctx context.Context, in models.RegisterInput) (string, error)
	Login(ctx context.Context, in models.LoginInput) (models.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token string, in models.PasswordInput) (string, error)
	SetupPassword(ctx context.Context, token string, in models.PasswordInput) (string, error)

	ListArticles(ctx context.Context, p ListParams) (models.ArticlePage, error)
	GetArticle(ctx context.Context, id string) (models.Article, error)
	CreateArticle(ctx context.Context, in models.ArticleInput) (models.Article, error)
	UpdateArticle(ctx context.Context, id string, in models.ArticleInput) (models.Article, error)
	DeleteArticle(ctx context.Context, id string) error

	ListUsers(ctx context.Context, p ListParams) ([]models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, in models.UserInput) (models.User, error)
	UpdateUser(ctx context.Context, id string, in models.UserInput) (models.User, error)
	ToggleUserStatus(ctx context.Context, id string) (string, error)
	DeleteUser(ctx context.Context, id string) error
}

// ListParams are the query parameters shared by the list endpoints. Zero
// values are not sent.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// TokenSource supplies the bearer token for each request.
type TokenSource interface {
	Token(ctx context.Context) string
}

// UnauthorizedHandler runs once for every 401 response, before the error is
// returned to the caller.
type UnauthorizedHandler func(ctx context.Context)
