package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

// Navbar is the top bar: app name on the left, signed-in user on the right.
func Navbar(st Styles, u *models.User, width int) string {
	left := "Articles Hub"
	right := "not signed in"
	if u != nil {
		right = u.FullName()
		if right == "" {
			right = u.Email
		}
		if u.Role == models.RoleAdmin {
			right += " (admin)"
		}
	}
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return st.Header.Render(left + strings.Repeat(" ", gap) + right)
}

type NavItem struct {
	Label string
	Path  string
}

// AdminNav is the admin sidebar.
var AdminNav = []NavItem{
	{Label: "Articles", Path: "/articles"},
	{Label: "Drafts", Path: "/drafts"},
	{Label: "New article", Path: "/articles/new"},
	{Label: "Users", Path: "/users"},
	{Label: "Create user", Path: "/users/create"},
	{Label: "Profile", Path: "/profile"},
}

// UserNav is the sidebar for everyone else.
var UserNav = []NavItem{
	{Label: "Articles", Path: "/articles"},
	{Label: "Drafts", Path: "/drafts"},
	{Label: "New article", Path: "/articles/new"},
	{Label: "Profile", Path: "/profile"},
}

// Sidebar lists items and highlights the one whose path prefixes current.
func Sidebar(st Styles, items []NavItem, current string) string {
	active := activeItem(items, current)
	lines := make([]string, len(items))
	for i, it := range items {
		if i == active {
			lines[i] = st.Active.Render("▸ " + it.Label)
			continue
		}
		lines[i] = "  " + it.Label
	}
	return st.Sidebar.Render(strings.Join(lines, "\n"))
}

// activeItem picks the longest matching path so /articles/new does not
// light up /articles as well.
func activeItem(items []NavItem, current string) int {
	best, bestLen := -1, 0
	for i, it := range items {
		if current == it.Path || strings.HasPrefix(current, it.Path+"/") {
			if len(it.Path) > bestLen {
				best, bestLen = i, len(it.Path)
			}
		}
	}
	return best
}

// Menu is the user dropdown. It only tracks whether it is open.
type Menu struct {
	Items []NavItem
	open  bool
}

func (m *Menu) Toggle()      { m.open = !m.open }
func (m *Menu) Close()       { m.open = false }
func (m *Menu) IsOpen() bool { return m.open }

func (m *Menu) View(st Styles) string {
	if !m.open {
		return st.Muted.Render("▾ menu")
	}
	lines := []string{st.Bold.Render("▴ menu")}
	for _, it := range m.Items {
		lines = append(lines, "  "+it.Label+st.Muted.Render("  "+it.Path))
	}
	return strings.Join(lines, "\n")
}
