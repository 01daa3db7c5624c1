package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool
	// TakePending performs a navigation scheduled by background code.
	TakePending(ctx context.Context)
	// Ref maps a row number of the mounted list to an item id.
	Ref(arg string) string

	Open(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Logout(ctx context.Context) error

	Search(ctx context.Context, term string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	GoToPage(ctx context.Context, n int) error
	SetLimit(ctx context.Context, n int) error
	LoadMore(ctx context.Context) error
	Refresh(ctx context.Context) error

	Publish(ctx context.Context, id string) error
	DeleteArticle(ctx context.Context, id string) error

	EditUser(ctx context.Context, id string) error
	ToggleUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
	EditProfile(ctx context.Context) error

	ToggleMenu(ctx context.Context) error
}

const (
	helpGuest = "Available commands: signup, login, forgot, reset <token>, setup <token>, open <path>, back, exit"
	helpUser  = "Available commands: articles, drafts, new, show <id>, edit <id>, publish <id>, delete <id>,\n" +
		"  search <term>, next, prev, page <n>, limit <n>, refresh, profile [edit], menu, open <path>, back, logout, exit"
	helpAdmin = "Admin commands: users, createuser, edituser <id>, toggle <id>, deluser <id>, more"
)

// runREPL starts the read–eval–print loop of the hub CLI.
//
// Before each prompt it performs any navigation scheduled in the background
// (a 401 or an expired session sends the user to the login view). It then
// reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Commands that name a view are opened by path, so they pass
// the same access gate as "open <path>". The loop exits on EOF, when ctx is
// done, or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		a.TakePending(ctx)

		fmt.Fprintf(w, "hub %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !dispatch(ctx, a, w, cmd, args) {
			fmt.Fprintln(w, "Bye!")
			return
		}
	}
}

// dispatch runs one command. It returns false when the REPL should stop.
func dispatch(ctx context.Context, a execIface, w io.Writer, cmd string, args []string) bool {
	arg := func(usage string) (string, bool) {
		if len(args) == 0 {
			fmt.Fprintln(w, "Usage:", usage)
			return "", false
		}
		return args[0], true
	}
	num := func(usage string) (int, bool) {
		s, ok := arg(usage)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			fmt.Fprintln(w, "Usage:", usage)
			return 0, false
		}
		return n, true
	}

	switch cmd {
	case "help":
		if !a.isLoggedIn(ctx) {
			fmt.Fprintln(w, helpGuest)
			break
		}
		fmt.Fprintln(w, helpUser)
		if a.isAdmin(ctx) {
			fmt.Fprintln(w, helpAdmin)
		}

	case "open":
		if p, ok := arg("open <path>"); ok {
			_ = a.Open(ctx, p)
		}
	case "back":
		_ = a.Back(ctx)

	case "signup":
		_ = a.Open(ctx, "/signup")
	case "login":
		_ = a.Open(ctx, "/login")
	case "forgot":
		_ = a.Open(ctx, "/forgot-password")
	case "reset":
		if t, ok := arg("reset <token>"); ok {
			_ = a.Open(ctx, "/reset-password/"+t)
		}
	case "setup":
		if t, ok := arg("setup <token>"); ok {
			_ = a.Open(ctx, "/setup-password/"+t)
		}
	case "logout":
		_ = a.Logout(ctx)

	case "articles":
		_ = a.Open(ctx, "/articles")
	case "drafts":
		_ = a.Open(ctx, "/drafts")
	case "new":
		_ = a.Open(ctx, "/articles/new")
	case "show":
		if id, ok := arg("show <id>"); ok {
			_ = a.Open(ctx, articlePath(a.Ref(id)))
		}
	case "edit":
		if id, ok := arg("edit <id>"); ok {
			_ = a.Open(ctx, editArticlePath(a.Ref(id)))
		}
	case "publish":
		if id, ok := arg("publish <id>"); ok {
			_ = a.Publish(ctx, a.Ref(id))
		}
	case "delete":
		if id, ok := arg("delete <id>"); ok {
			_ = a.DeleteArticle(ctx, a.Ref(id))
		}

	case "search":
		_ = a.Search(ctx, strings.Join(args, " "))
	case "next":
		_ = a.NextPage(ctx)
	case "prev":
		_ = a.PrevPage(ctx)
	case "page":
		if n, ok := num("page <n>"); ok {
			_ = a.GoToPage(ctx, n)
		}
	case "limit":
		if n, ok := num("limit <n>"); ok {
			_ = a.SetLimit(ctx, n)
		}
	case "more":
		_ = a.LoadMore(ctx)
	case "refresh":
		_ = a.Refresh(ctx)

	case "users":
		_ = a.Open(ctx, "/users")
	case "createuser":
		_ = a.Open(ctx, "/users/create")
	case "edituser":
		if id, ok := arg("edituser <id>"); ok {
			_ = a.EditUser(ctx, a.Ref(id))
		}
	case "toggle":
		if id, ok := arg("toggle <id>"); ok {
			_ = a.ToggleUser(ctx, a.Ref(id))
		}
	case "deluser":
		if id, ok := arg("deluser <id>"); ok {
			_ = a.DeleteUser(ctx, a.Ref(id))
		}

	case "profile":
		if len(args) > 0 && args[0] == "edit" {
			_ = a.EditProfile(ctx)
			break
		}
		_ = a.Open(ctx, "/profile")
	case "menu":
		_ = a.ToggleMenu(ctx)

	case "exit", "quit":
		return false

	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
	}
	return true
}
