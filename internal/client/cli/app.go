package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/access"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/config"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/router"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/services"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/ui"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/validation"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/logging"
)

// Deps are the collaborators an App is built from.
type Deps struct {
	Config   *config.Config
	Logger   logging.Logger
	Sessions services.SessionStore
	Auth     services.AuthService
	Articles services.ArticleService
	Users    services.UserService
	In       io.Reader
	Out      io.Writer
}

type App struct {
	cfg      *config.Config
	log      logging.Logger
	sessions services.SessionStore
	auth     services.AuthService
	articles services.ArticleService
	users    services.UserService

	nav    *router.Navigator
	gate   router.Gate
	st     ui.Styles
	md     *ui.Markdown
	toast  *ui.Toaster
	menu   ui.Menu
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	mu     sync.Mutex
	list   listController
	drafts map[string]validation.Values
}

func NewApp(d Deps) (*App, error) {
	if d.Config == nil {
		return nil, errors.New("cli: config is required")
	}
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}

	style := "notty"
	if isTerminal() {
		style = "dark"
	}
	md, err := ui.NewMarkdown(style, d.Config.Width)
	if err != nil {
		return nil, err
	}

	st := ui.DefaultStyles()
	return &App{
		cfg:      d.Config,
		log:      d.Logger,
		sessions: d.Sessions,
		auth:     d.Auth,
		articles: d.Articles,
		users:    d.Users,
		nav:      router.NewNavigator("/"),
		st:       st,
		md:       md,
		toast:    ui.NewToaster(d.Out, st),
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
		now:      time.Now,
	}, nil
}

// Run starts the REPL and the session watcher and blocks until the user
// exits or ctx is done. The two loops stop together.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.unmount()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return a.Root(gctx)
	})
	g.Go(func() error {
		a.WatchSession(gctx, a.cfg.SessionCheckInterval)
		return nil
	})
	return g.Wait()
}

// Root prints the welcome banner, opens the start view and runs the REPL.
func (a *App) Root(ctx context.Context) error {
	fmt.Fprintln(a.out, a.st.Header.Render("Welcome to Articles Hub (type 'help' for commands)"))
	if err := a.open(ctx, "/", false); err != nil {
		return err
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) session(ctx context.Context) session.Session {
	if a.sessions == nil {
		return session.Session{}
	}
	s, err := a.sessions.Get(ctx)
	if err != nil {
		a.log.Warn(ctx, "read session", "error", err)
		return session.Session{}
	}
	return s
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session(ctx).Authenticated()
}

func (a *App) isAdmin(ctx context.Context) bool {
	return access.IsAdmin(a.session(ctx))
}

// getStatus is the prompt prefix: current path and signed-in user.
func (a *App) getStatus() string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	status := a.nav.Current()
	if s := a.session(ctx); s.Authenticated() {
		name := s.User.FullName()
		if name == "" {
			name = s.User.Email
		}
		status += " (" + name + ")"
	}
	return status
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report surfaces err to the user. Validation failures are listed inline
// under the form; authorization failures were already handled globally and
// cancellations stay silent. Anything else becomes an error toast with the
// backend's message or fallback.
func (a *App) report(ctx context.Context, err error, fallback string) {
	var verr *services.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		a.fieldErrors(verr.Fields)
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrCanceled),
		errors.Is(err, context.Canceled),
		errors.Is(err, errFormCanceled),
		errors.Is(err, io.EOF):
		a.log.Debug(ctx, "flow stopped", "error", err)
	case errors.Is(err, services.ErrMissingToken), errors.Is(err, common.ErrNoSession):
		a.toast.Error(err.Error())
	default:
		a.log.Warn(ctx, "request failed", "error", err)
		msg := client.Message(err, fallback)
		if msg == "" {
			msg = err.Error()
		}
		a.toast.Error(msg)
	}
}

func (a *App) fieldErrors(errs map[string]string) {
	names := make([]string, 0, len(errs))
	for k := range errs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, n := range names {
		a.println(a.st.Error.Render("  " + n + ": " + errs[n]))
	}
}
