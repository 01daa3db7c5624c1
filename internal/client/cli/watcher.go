package cli

import (
	"context"
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

const (
	msgSessionExpired = "Your session has expired. Please log in again."
	msgUnauthorized   = "You are not authorized. Please log in again."
)

// WatchSession checks the stored token's expiry every interval. An expired
// session is cleared and the user is sent to the login view.
func (a *App) WatchSession(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkSession(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// checkSession reports whether it ended an expired session.
func (a *App) checkSession(ctx context.Context) bool {
	s := a.session(ctx)
	if !s.Authenticated() || !s.Expired(a.now()) {
		return false
	}
	a.log.Info(ctx, "session expired", "user", s.User.ID)
	a.endSession(ctx, msgSessionExpired)
	return true
}

// HandleUnauthorized is installed as the HTTP client's 401 hook. It runs for
// every 401; only the first one of a burst finds a session to clear, so the
// notice is shown once.
func (a *App) HandleUnauthorized(ctx context.Context) {
	a.endSession(context.WithoutCancel(ctx), msgUnauthorized)
}

func (a *App) endSession(ctx context.Context, notice string) {
	had := a.isLoggedIn(ctx)
	if a.sessions != nil {
		if err := a.sessions.Clear(ctx); err != nil {
			a.log.Error(ctx, "clear session", "error", err)
		}
	}
	a.nav.Force(common.LoginPath)
	if had {
		a.toast.Info(notice)
	}
}

// TakePending performs a hard navigation scheduled by background code.
func (a *App) TakePending(ctx context.Context) {
	p, ok := a.nav.TakePending()
	if !ok {
		return
	}
	if err := a.open(ctx, p, false); err != nil {
		a.log.Warn(ctx, "pending navigation", "path", p, "error", err)
	}
}
