package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/config"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/services"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/storage"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/logging"
)

// runtime is everything a command needs, built from the resolved config.
type runtime struct {
	cfg      *config.Config
	log      logging.Logger
	store    *storage.Store
	sessions *session.Provider
	http     *client.HTTPClient
}

func newRuntime(ctx context.Context, flags *config.Flags) (*runtime, error) {
	cfg, err := flags.Resolve(os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	store, err := storage.Open(ctx, cfg.SessionDB)
	if err != nil {
		return nil, err
	}
	sessions := session.NewProvider(store.DB)

	hc, err := client.NewHTTPClient(cfg.BackendURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithTokenSource(sessions),
		client.WithLogger(log),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &runtime{cfg: cfg, log: log, store: store, sessions: sessions, http: hc}, nil
}

func (rt *runtime) close() {
	if err := rt.store.Close(); err != nil {
		rt.log.Warn(context.Background(), "close session db", "error", err)
	}
	if s, ok := rt.log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

// NewRootCmd builds the hub command. Without a subcommand it starts the
// interactive client.
func NewRootCmd() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:   "hub",
		Short: "Articles Hub terminal client",
		Long: `hub is an interactive client for the Articles Hub backend.

Sign up, log in, read and write articles, and (as an admin) manage users.
Settings come from defaults, an optional config file, HUB_* environment
variables and flags, in that order.

Run without arguments to start the interactive shell.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := newRuntime(ctx, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			app, err := NewApp(Deps{
				Config:   rt.cfg,
				Logger:   rt.log,
				Sessions: rt.sessions,
				Auth:     services.NewAuthService(rt.http, rt.sessions),
				Articles: services.NewArticleService(rt.http),
				Users:    services.NewUserService(rt.http, rt.sessions),
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			rt.http.SetUnauthorizedHandler(app.HandleUnauthorized)
			return app.Run(ctx)
		},
	}
	flags = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the stored session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return whoami(cmd, flags)
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Forget the stored session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return logout(cmd, flags)
			},
		},
	)
	return cmd
}

func whoami(cmd *cobra.Command, flags *config.Flags) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx, flags)
	if err != nil {
		return err
	}
	defer rt.close()

	s, err := rt.sessions.Get(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !s.Authenticated() {
		fmt.Fprintln(out, "not signed in")
		return nil
	}
	fmt.Fprintf(out, "%s <%s> role=%s\n", s.User.FullName(), s.User.Email, s.User.Role)
	if at, ok, err := rt.sessions.SignedInAt(ctx); err == nil && ok {
		fmt.Fprintf(out, "signed in %s\n", at.Local().Format("2006-01-02 15:04:05"))
	}
	if claims, err := session.ParseClaims(s.Token); err == nil && !claims.ExpiresAt.IsZero() {
		state := "valid"
		if s.Expired(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(out, "token %s until %s\n", state, claims.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func logout(cmd *cobra.Command, flags *config.Flags) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx, flags)
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.sessions.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "logged out")
	return nil
}
