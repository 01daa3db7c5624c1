package models

import (
	"bytes"
	"encoding/json"
	"time"
)

type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
)

type Article struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content"`
	ImageURL   string        `json:"imageUrl,omitempty"`
	Status     ArticleStatus `json:"status"`
	AuthorID   string        `json:"authorId"`
	AuthorName string        `json:"authorName,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func (a Article) Key() string { return a.ID }

func (a *Article) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID        string          `json:"id"`
		MongoID   string          `json:"_id"`
		Title     string          `json:"title"`
		Content   string          `json:"content"`
		ImageURL  string          `json:"imageUrl"`
		Status    ArticleStatus   `json:"status"`
		Author    json.RawMessage `json:"authorId"`
		CreatedAt time.Time       `json:"createdAt"`
		UpdatedAt time.Time       `json:"updatedAt"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*a = Article{
		ID:        raw.ID,
		Title:     raw.Title,
		Content:   raw.Content,
		ImageURL:  raw.ImageURL,
		Status:    raw.Status,
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
	if a.ID == "" {
		a.ID = raw.MongoID
	}

	author := bytes.TrimSpace(raw.Author)
	switch {
	case len(author) == 0 || bytes.Equal(author, []byte("null")):
	case author[0] == '"':
		if err := json.Unmarshal(author, &a.AuthorID); err != nil {
			return err
		}
	default:
		var u User
		if err := json.Unmarshal(author, &u); err != nil {
			return err
		}
		a.AuthorID = u.ID
		a.AuthorName = u.FullName()
	}
	return nil
}

// ImageAction says what an update does with the stored image.
type ImageAction int

const (
	ImageKeep ImageAction = iota
	ImageReplace
	ImageRemove
)

// ArticleInput carries create/update fields. ImagePath is a local file that
// is uploaded as "imageFile" when ImageAction is ImageReplace (or on create,
// whenever it is set).
type ArticleInput struct {
	Title       string
	Content     string
	Status      ArticleStatus
	ImagePath   string
	ImageAction ImageAction
}

// ArticlePage is one page of the article listing.
type ArticlePage struct {
	Items []Article `json:"items"`
	Total int       `json:"total"`
}
