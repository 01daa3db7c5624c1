package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/access"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/listing"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/router"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/ui"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

const maxRedirects = 4

var errTooManyRedirects = errors.New("too many redirects")

// Open resolves path through the access gate and mounts the view it lands
// on. Form views prompt for input only when they were opened directly; a
// view reached through a redirect just shows where the user is.
func (a *App) Open(ctx context.Context, path string) error {
	return a.open(ctx, path, true)
}

func (a *App) open(ctx context.Context, path string, interactive bool) error {
	s := a.session(ctx)
	for hops := 0; ; hops++ {
		d := a.gate.Resolve(path, s)
		if d.Redirect == "" {
			a.nav.Go(d.Match.Path)
			a.menu.Close()
			a.unmount()
			return a.mount(ctx, d.Match, s, interactive && hops == 0)
		}
		if hops >= maxRedirects {
			return fmt.Errorf("%w from %s", errTooManyRedirects, path)
		}
		a.log.Debug(ctx, "redirect", "from", path, "to", d.Redirect)
		path = d.Redirect
	}
}

// Back returns to the previous view.
func (a *App) Back(ctx context.Context) error {
	prev, ok := a.nav.Back()
	if !ok {
		a.println("Nothing to go back to.")
		return nil
	}
	a.unmount()
	return a.open(ctx, prev, false)
}

func (a *App) mount(ctx context.Context, m router.Match, s session.Session, interactive bool) error {
	switch m.Route.Name {
	case router.Signup:
		return a.formView(ctx, interactive, "Create an account", "signup", a.Signup)
	case router.Login:
		return a.formView(ctx, interactive, "Sign in", "login", a.Login)
	case router.ForgotPassword:
		return a.formView(ctx, interactive, "Forgot password", "forgot", a.ForgotPassword)
	case router.ResetPassword:
		token := m.Param("token")
		return a.formView(ctx, interactive, "Reset password", "reset <token>", func(ctx context.Context) error {
			return a.ResetPassword(ctx, token)
		})
	case router.SetupPassword:
		token := m.Param("token")
		return a.formView(ctx, interactive, "Set up your password", "setup <token>", func(ctx context.Context) error {
			return a.SetupPassword(ctx, token)
		})
	case router.Articles:
		a.mountArticles(ctx, s, "Articles", models.ArticlePublished)
	case router.Drafts:
		a.mountArticles(ctx, s, "My drafts", models.ArticleDraft)
	case router.NewArticle:
		return a.formView(ctx, interactive, "New article", "new", a.NewArticle)
	case router.ArticleDetail:
		return a.showArticle(ctx, s, m.Param("id"))
	case router.EditArticle:
		return a.EditArticle(ctx, m.Param("id"), interactive)
	case router.Users:
		a.mountUsers(ctx)
	case router.CreateUser:
		return a.formView(ctx, interactive, "Create user", "createuser", a.CreateUser)
	case router.Profile:
		return a.showProfile(ctx)
	default:
		a.println(a.st.Title.Render("404"), "Page not found:", m.Path)
		a.println(a.st.Muted.Render("Type 'help' for the available commands."))
	}
	return nil
}

// formView runs flow when the form was opened directly, otherwise it only
// names the command that starts it.
func (a *App) formView(ctx context.Context, interactive bool, title, command string, flow func(context.Context) error) error {
	if !interactive {
		a.println(a.st.Title.Render(title), a.st.Muted.Render("(type '"+command+"')"))
		return nil
	}
	return flow(ctx)
}

// unmount closes the mounted list pipeline, cancelling its fetches.
func (a *App) unmount() {
	a.mu.Lock()
	l := a.list
	a.list = nil
	a.mu.Unlock()
	if l != nil {
		l.close()
	}
}

func (a *App) mounted() listController {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.list
}

func (a *App) setList(l listController) {
	a.mu.Lock()
	a.list = l
	a.mu.Unlock()
}

func (a *App) mountArticles(ctx context.Context, s session.Session, title string, status models.ArticleStatus) {
	lv := newListView(
		listFetch[models.Article](a.articles.List, "Failed to load articles"),
		listing.ModePaged,
		a.settleWait(),
		a.articleListView(s, title),
		listing.WithStatus(string(status)),
		listing.WithLimit(a.cfg.PageSize),
		listing.WithDebounce(a.cfg.SearchDebounce),
		listing.WithNotifier(a.toast),
		listing.WithLogger(a.log.With("list", title)),
	)
	a.setList(lv)
	a.chrome(ctx, s)
	a.println(lv.await(ctx))
}

func (a *App) mountUsers(ctx context.Context) {
	lv := newListView(
		listFetch[models.User](a.users.List, "Failed to load users"),
		listing.ModeInfinite,
		a.settleWait(),
		a.userListView(),
		listing.WithLimit(a.cfg.PageSize),
		listing.WithDebounce(a.cfg.SearchDebounce),
		listing.WithNotifier(a.toast),
		listing.WithLogger(a.log.With("list", "users")),
	)
	a.setList(lv)
	a.chrome(ctx, a.session(ctx))
	a.println(lv.await(ctx))
}

// settleWait bounds how long a command waits for its list to settle: one
// debounce plus one request.
func (a *App) settleWait() time.Duration {
	return a.cfg.SearchDebounce + a.cfg.RequestTimeout
}

// chrome prints the navbar and, for signed-in users, the sidebar.
func (a *App) chrome(_ context.Context, s session.Session) {
	var u *models.User
	if s.Authenticated() {
		u = &s.User
	}
	a.println(ui.Navbar(a.st, u, a.cfg.Width))
	if u != nil {
		a.println(ui.Sidebar(a.st, a.navItems(s), a.nav.Current()))
	}
}

func (a *App) navItems(s session.Session) []ui.NavItem {
	if access.CanManageUsers(s) {
		return ui.AdminNav
	}
	return ui.UserNav
}

func (a *App) articleListView(s session.Session, title string) func(listing.Snapshot[models.Article]) string {
	return func(snap listing.Snapshot[models.Article]) string {
		var b strings.Builder
		header := title
		if snap.Query.Search != "" {
			header += fmt.Sprintf(" · search %q", snap.Query.Search)
		}
		b.WriteString(a.st.Title.Render(header))
		b.WriteString("\n")

		switch {
		case snap.Loading && len(snap.Items) == 0:
			b.WriteString(ui.Skeleton(a.st, 3, a.cfg.Width))
		case snap.State == listing.StateError && len(snap.Items) == 0:
			b.WriteString(a.st.Error.Render("Could not load articles."))
		case len(snap.Items) == 0:
			b.WriteString(ui.Empty(a.st, snap.Query.Search))
		default:
			cards := make([]string, len(snap.Items))
			for i, it := range snap.Items {
				cards[i] = ui.ArticleCard(a.st, it, ui.CardOptions{
					Width:     a.cfg.Width,
					Index:     i + 1,
					CanEdit:   access.CanEditArticle(s, it),
					CanManage: access.CanManageArticle(s, it),
				})
			}
			b.WriteString(strings.Join(cards, "\n"))
		}
		b.WriteString("\n")
		b.WriteString(ui.Pagination(a.st, pager(snap)))
		return b.String()
	}
}

func (a *App) userListView() func(listing.Snapshot[models.User]) string {
	return func(snap listing.Snapshot[models.User]) string {
		var b strings.Builder
		header := "Users"
		if snap.Query.Search != "" {
			header += fmt.Sprintf(" · search %q", snap.Query.Search)
		}
		b.WriteString(a.st.Title.Render(header))
		b.WriteString("\n")

		switch {
		case snap.Loading && len(snap.Items) == 0:
			b.WriteString(ui.Skeleton(a.st, 3, a.cfg.Width))
		case snap.State == listing.StateError && len(snap.Items) == 0:
			b.WriteString(a.st.Error.Render("Could not load users."))
		default:
			b.WriteString(ui.UserTable(a.st, snap.Items, a.cfg.Width))
		}
		if snap.HasMore {
			b.WriteString("\n")
			b.WriteString(a.st.Muted.Render("more users available (type 'more')"))
		}
		return b.String()
	}
}

func pager[T any](snap listing.Snapshot[T]) ui.Pager {
	return ui.Pager{
		Page:       snap.Query.Page,
		Pages:      snap.Pages,
		Total:      snap.Total,
		TotalKnown: snap.TotalKnown,
		HasMore:    snap.HasMore,
		Loading:    snap.Loading,
	}
}

// showArticle loads and renders one article. A missing article sends the
// user back to the list.
func (a *App) showArticle(ctx context.Context, s session.Session, id string) error {
	art, err := a.articles.Get(ctx, id)
	if err != nil {
		return a.articleLoadFailed(ctx, err)
	}
	a.chrome(ctx, s)
	a.println(ui.ArticleDetail(a.st, a.md, art, ui.CardOptions{
		Width:     a.cfg.Width,
		CanEdit:   access.CanEditArticle(s, art),
		CanManage: access.CanManageArticle(s, art),
	}))
	return nil
}

// articleLoadFailed handles a failed article load: not-found redirects to
// the article list, everything else is reported.
func (a *App) articleLoadFailed(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		a.toast.Error("Article not found")
		return a.open(ctx, router.PathArticles, false)
	}
	a.report(ctx, err, "Failed to load article")
	return nil
}

func (a *App) showProfile(ctx context.Context) error {
	u, err := a.users.LoadProfile(ctx)
	if err != nil {
		a.report(ctx, err, "Failed to load profile")
		return nil
	}
	s := a.session(ctx)
	a.chrome(ctx, s)
	a.println(a.st.Title.Render("My profile"))
	a.println(ui.UserDetail(a.st, u))
	a.println(a.st.Muted.Render("type 'profile edit' to change your details"))
	return nil
}

// ToggleMenu opens or closes the user menu.
func (a *App) ToggleMenu(ctx context.Context) error {
	a.menu.Items = a.navItems(a.session(ctx))
	a.menu.Toggle()
	a.println(a.menu.View(a.st))
	return nil
}
