package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/repositories/metadata"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/dbx"
)

// Provider reads and writes the persisted session. Reads are served from an
// in-memory copy after the first load; writes always replace the whole
// record.
type Provider struct {
	db      *sql.DB
	repoFor func(dbx.DBTX) metadata.Repository
	repo    metadata.Repository

	mu     sync.RWMutex
	cached Session
	loaded bool
}

// NewProvider builds a Provider over db. The metadata table must exist.
func NewProvider(db *sql.DB) *Provider {
	repoFor := func(x dbx.DBTX) metadata.Repository { return metadata.NewSQLiteRepository(x) }
	return &Provider{db: db, repoFor: repoFor, repo: repoFor(db)}
}

// Get returns the current session, loading it from storage on first use.
func (p *Provider) Get(ctx context.Context) (Session, error) {
	p.mu.RLock()
	if p.loaded {
		s := p.cached
		p.mu.RUnlock()
		return s, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return p.cached, nil
	}

	s, err := p.load(ctx)
	if err != nil {
		return Session{}, err
	}
	p.cached, p.loaded = s, true
	return s, nil
}

func (p *Provider) load(ctx context.Context) (Session, error) {
	kv, err := p.repo.List(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	token := kv[common.SessionTokenKey]
	if len(token) == 0 {
		return Session{}, nil
	}
	s := Session{Token: string(token)}

	if raw := kv[common.SessionUserKey]; len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.User); err != nil {
			return Session{}, fmt.Errorf("decode session user: %w", err)
		}
	}
	return s, nil
}

// SignedInAt reports when the stored token was written.
func (p *Provider) SignedInAt(ctx context.Context) (time.Time, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.repo.UpdatedAt(ctx, common.SessionTokenKey)
}

// Token returns the bearer token, or "" when logged out or unreadable.
func (p *Provider) Token(ctx context.Context) string {
	s, err := p.Get(ctx)
	if err != nil {
		return ""
	}
	return s.Token
}

// Update overwrites token and user together.
func (p *Provider) Update(ctx context.Context, s Session) error {
	user, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := p.repoFor(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, []byte(s.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionUserKey, user)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	p.cached, p.loaded = s, true
	return nil
}

// UpdateUser replaces the stored user and keeps the token.
func (p *Provider) UpdateUser(ctx context.Context, u User) error {
	s, err := p.Get(ctx)
	if err != nil {
		return err
	}
	if !s.Authenticated() {
		return common.ErrNoSession
	}
	s.User = u
	return p.Update(ctx, s)
}

// Clear removes the persisted session entirely.
func (p *Provider) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	p.cached, p.loaded = Session{}, true
	return nil
}
