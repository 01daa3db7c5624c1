// Package access centralises the role checks used to gate views and
// actions. The backend remains the authority; these only decide what the
// client offers.
package access

import (
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
)

func IsAdmin(s session.Session) bool {
	return s.Authenticated() && s.User.Role == models.RoleAdmin
}

func CanCreateArticle(s session.Session) bool {
	return s.Authenticated()
}

// CanEditArticle is author-only.
func CanEditArticle(s session.Session, a models.Article) bool {
	return s.Authenticated() && a.AuthorID != "" && a.AuthorID == s.User.ID
}

// CanManageArticle covers delete and publish: the author or any admin.
func CanManageArticle(s session.Session, a models.Article) bool {
	return CanEditArticle(s, a) || IsAdmin(s)
}

func CanManageUsers(s session.Session) bool {
	return IsAdmin(s)
}
