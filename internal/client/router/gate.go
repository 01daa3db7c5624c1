package router

import (
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/access"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
)

// Decision is the outcome of resolving a path: either a Match to mount or a
// Redirect to follow.
type Decision struct {
	Match    Match
	Redirect string
}

// Gate applies route access levels to the current session.
type Gate struct{}

// Resolve matches path and checks access. Anonymous users are sent to the
// login view; signed-in users lacking the admin role are sent to the
// article list. The root path goes to signup, or to the article list for a
// signed-in user.
func (Gate) Resolve(path string, s session.Session) Decision {
	if Clean(path) == "/" {
		if s.Authenticated() {
			return Decision{Redirect: PathArticles}
		}
		return Decision{Redirect: PathSignup}
	}

	m := Lookup(path)
	switch m.Route.Access {
	case Authenticated:
		if !s.Authenticated() {
			return Decision{Redirect: PathLogin}
		}
	case Admin:
		if !s.Authenticated() {
			return Decision{Redirect: PathLogin}
		}
		if !access.CanManageUsers(s) {
			return Decision{Redirect: PathArticles}
		}
	}
	return Decision{Match: m}
}
