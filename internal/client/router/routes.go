// Package router maps client paths to views and decides who may open them.
package router

import (
	"strings"
)

// Access is the minimum standing a route requires.
type Access int

const (
	Public Access = iota
	Authenticated
	Admin
)

func (a Access) String() string {
	switch a {
	case Public:
		return "public"
	case Authenticated:
		return "authenticated"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// Route names, used by the views to dispatch.
const (
	Signup         = "signup"
	Login          = "login"
	ForgotPassword = "forgot-password"
	ResetPassword  = "reset-password"
	SetupPassword  = "setup-password"
	Articles       = "articles"
	Drafts         = "drafts"
	NewArticle     = "new-article"
	ArticleDetail  = "article"
	EditArticle    = "edit-article"
	Users          = "users"
	CreateUser     = "create-user"
	Profile        = "profile"
	NotFound       = "not-found"
)

// Well-known paths.
const (
	PathLogin    = "/login"
	PathSignup   = "/signup"
	PathArticles = "/articles"
	PathDrafts   = "/drafts"
	PathUsers    = "/users"
	PathProfile  = "/profile"
)

type Route struct {
	Name    string
	Pattern string
	Access  Access

	segments []string
}

// Table is the full route list. A pattern segment starting with ':' binds a
// parameter.
var Table = []Route{
	newRoute(Signup, "/signup", Public),
	newRoute(Login, "/login", Public),
	newRoute(ForgotPassword, "/forgot-password", Public),
	newRoute(ResetPassword, "/reset-password/:token", Public),
	newRoute(SetupPassword, "/setup-password/:token", Public),
	newRoute(Articles, "/articles", Authenticated),
	newRoute(Drafts, "/drafts", Authenticated),
	newRoute(NewArticle, "/articles/new", Authenticated),
	newRoute(ArticleDetail, "/articles/:id", Authenticated),
	newRoute(EditArticle, "/articles/:id/edit", Authenticated),
	newRoute(Users, "/users", Admin),
	newRoute(CreateUser, "/users/create", Admin),
	newRoute(Profile, "/profile", Authenticated),
}

var notFound = Route{Name: NotFound, Pattern: "*", Access: Public}

// aliases are rewritten before matching.
var aliases = map[string]string{
	"/user-profile": "/profile",
}

func newRoute(name, pattern string, access Access) Route {
	return Route{Name: name, Pattern: pattern, Access: access, segments: split(pattern)}
}

// Match is a resolved path.
type Match struct {
	Route  Route
	Path   string
	Params map[string]string
}

func (m Match) Param(name string) string { return m.Params[name] }

// Clean strips the query, fragment and trailing slash and ensures a leading
// slash.
func Clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// Lookup finds the route for path. Static segments beat parameters, so
// /articles/new never binds as an article id. Unknown paths match the
// not-found route.
func Lookup(path string) Match {
	path = Clean(path)
	if to, ok := aliases[path]; ok {
		path = to
	}
	segs := split(path)

	best, bestScore := -1, -1
	var bestParams map[string]string
	for i, r := range Table {
		params, score, ok := r.match(segs)
		if ok && score > bestScore {
			best, bestScore, bestParams = i, score, params
		}
	}
	if best < 0 {
		return Match{Route: notFound, Path: path}
	}
	return Match{Route: Table[best], Path: path, Params: bestParams}
}

// match reports whether segs fit r; score counts static segments.
func (r Route) match(segs []string) (map[string]string, int, bool) {
	if len(segs) != len(r.segments) {
		return nil, 0, false
	}
	var params map[string]string
	score := 0
	for i, p := range r.segments {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, 0, false
			}
			if params == nil {
				params = map[string]string{}
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, 0, false
		}
		score++
	}
	return params, score, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
