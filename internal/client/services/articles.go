package services

import (
	"context"
	"fmt"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/listing"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
)

// ArticleService is the article half of the CRUD flows. List has the
// listing.FetchFunc shape so it can feed a pipeline directly.
type ArticleService interface {
	List(ctx context.Context, q listing.Query) (listing.Result[models.Article], error)
	Get(ctx context.Context, id string) (models.Article, error)
	Create(ctx context.Context, in models.ArticleInput) (models.Article, error)
	Update(ctx context.Context, id string, in models.ArticleInput) (models.Article, error)
	Publish(ctx context.Context, id string) (models.Article, error)
	Delete(ctx context.Context, id string) error
}

type articleService struct {
	client client.Client
}

func NewArticleService(c client.Client) ArticleService {
	return &articleService{client: c}
}

func (s *articleService) List(ctx context.Context, q listing.Query) (listing.Result[models.Article], error) {
	page, err := s.client.ListArticles(ctx, client.ListParams{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		Status: q.Status,
	})
	if err != nil {
		return listing.Result[models.Article]{}, err
	}
	return listing.Result[models.Article]{Items: page.Items, Total: page.Total, TotalKnown: true}, nil
}

func (s *articleService) Get(ctx context.Context, id string) (models.Article, error) {
	a, err := s.client.GetArticle(ctx, id)
	if err != nil {
		return models.Article{}, fmt.Errorf("get article %s: %w", id, err)
	}
	return a, nil
}

// Create saves a new article. An empty status means draft.
func (s *articleService) Create(ctx context.Context, in models.ArticleInput) (models.Article, error) {
	if in.Status == "" {
		in.Status = models.ArticleDraft
	}
	in, err := cleanArticle(in)
	if err != nil {
		return models.Article{}, err
	}
	a, err := s.client.CreateArticle(ctx, in)
	if err != nil {
		return models.Article{}, fmt.Errorf("create article: %w", err)
	}
	return a, nil
}

func (s *articleService) Update(ctx context.Context, id string, in models.ArticleInput) (models.Article, error) {
	in, err := cleanArticle(in)
	if err != nil {
		return models.Article{}, err
	}
	a, err := s.client.UpdateArticle(ctx, id, in)
	if err != nil {
		return models.Article{}, fmt.Errorf("update article %s: %w", id, err)
	}
	return a, nil
}

// Publish flips a draft to published without touching other fields.
func (s *articleService) Publish(ctx context.Context, id string) (models.Article, error) {
	a, err := s.client.UpdateArticle(ctx, id, models.ArticleInput{Status: models.ArticlePublished})
	if err != nil {
		return models.Article{}, fmt.Errorf("publish article %s: %w", id, err)
	}
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("delete article %s: %w", id, err)
	}
	return nil
}

func cleanArticle(in models.ArticleInput) (models.ArticleInput, error) {
	file := ""
	if in.ImageAction == models.ImageReplace || in.ImageAction == models.ImageKeep {
		file = in.ImagePath
	}
	v, err := check(validation.ArticleSchema, validation.Values{
		"title":     in.Title,
		"content":   in.Content,
		"status":    string(in.Status),
		"imageFile": file,
	})
	if err != nil {
		return in, err
	}
	in.Title = v["title"]
	in.Content = v["content"]
	in.ImagePath = v["imageFile"]
	return in, nil
}
