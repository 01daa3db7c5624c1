// Package testserver is an in-memory implementation of the Articles Hub REST
// API. It backs the client's integration tests and cmd/hubmock; it mirrors
// the wire contract, not the real backend's business rules.
package testserver

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/cryptox"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/logging"
)

// Seeded accounts.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "Admin@1234"
	UserEmail     = "user@example.com"
	UserPassword  = "User@12345"
)

type user struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Role         string
	Status       string
	PasswordHash string
	CreatedAt    time.Time
}

type article struct {
	ID        string
	Title     string
	Content   string
	ImageURL  string
	Status    string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Server holds all state behind one mutex.
type Server struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    logging.Logger

	mu       sync.Mutex
	users    map[string]*user
	articles map[string]*article
	// links maps an emailed password token to a user id.
	links  map[string]string
	outbox []Mail

	handler http.Handler
}

// Mail is a password link the server would have emailed.
type Mail struct {
	To    string
	Kind  string
	Token string
}

type Option func(*Server)

func WithSecret(secret []byte) Option { return func(s *Server) { s.secret = secret } }

func WithTokenTTL(d time.Duration) Option { return func(s *Server) { s.ttl = d } }

func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

func WithLogger(l logging.Logger) Option { return func(s *Server) { s.log = l } }

// New builds a server seeded with one admin and one regular user.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		secret:   []byte("hub-test-secret"),
		ttl:      time.Hour,
		now:      time.Now,
		log:      logging.Nop(),
		users:    map[string]*user{},
		articles: map[string]*article{},
		links:    map[string]string{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := s.seedUser("Ada", "Admin", AdminEmail, roleAdmin, AdminPassword); err != nil {
		return nil, err
	}
	if _, err := s.seedUser("Uma", "User", UserEmail, roleUser, UserPassword); err != nil {
		return nil, err
	}
	s.handler = s.routes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) seedUser(first, last, email, role, password string) (*user, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &user{
		ID:           uuid.NewString(),
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Role:         role,
		Status:       statusActive,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	s.users[u.ID] = u
	return u, nil
}

// UserID returns the id of the account with email.
func (s *Server) UserID(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userByEmail(email)
	if u == nil {
		return "", false
	}
	return u.ID, true
}

// Outbox returns the password links sent so far.
func (s *Server) Outbox() []Mail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Mail(nil), s.outbox...)
}

// LastMail returns the most recent link sent to email.
func (s *Server) LastMail(email string) (Mail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.outbox) - 1; i >= 0; i-- {
		if strings.EqualFold(s.outbox[i].To, email) {
			return s.outbox[i], true
		}
	}
	return Mail{}, false
}

// SeedArticle inserts an article directly, bypassing the API.
func (s *Server) SeedArticle(authorEmail, title, content, status string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.userByEmail(authorEmail)
	if u == nil {
		return "", false
	}
	now := s.now()
	a := &article{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Status:    status,
		AuthorID:  u.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.articles[a.ID] = a
	return a.ID, true
}

// DeleteArticle removes an article behind the client's back.
func (s *Server) DeleteArticle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.articles, id)
}

func (s *Server) userByEmail(email string) *user {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

// sendLinkLocked records a password link for u.
func (s *Server) sendLinkLocked(ctx context.Context, u *user, kind string) error {
	tok, err := cryptox.RandomToken(16)
	if err != nil {
		return err
	}
	s.links[tok] = u.ID
	s.outbox = append(s.outbox, Mail{To: u.Email, Kind: kind, Token: tok})
	s.log.Info(ctx, "password link issued", "email", u.Email, "kind", kind, "path", "/"+kind+"-password/"+tok)
	return nil
}

// sortedArticles returns articles newest first.
func (s *Server) sortedArticles() []*article {
	out := make([]*article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Server) sortedUsers() []*user {
	out := make([]*user, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Email < out[j].Email
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
