package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

// UserRow renders one line of the admin users table.
func UserRow(st Styles, index int, u models.User, width int) string {
	status := string(u.Status)
	if u.Status == models.StatusInactive {
		status = st.Inactive.Render(status)
	} else {
		status = st.Success.Render(status)
	}
	name := truncate(u.FullName(), 24)
	email := truncate(u.Email, 30)

	cells := []string{
		fmt.Sprintf("%3d", index),
		padRight(name, 24),
		padRight(email, 30),
		padRight(string(u.Role), 6),
		status,
		st.Muted.Render(u.ID),
	}
	return truncateLine(strings.Join(cells, "  "), width)
}

// UserTable renders a header followed by one row per user.
func UserTable(st Styles, users []models.User, width int) string {
	if len(users) == 0 {
		return st.Muted.Render("No users found.")
	}
	head := strings.Join([]string{
		"  #",
		padRight("Name", 24),
		padRight("Email", 30),
		padRight("Role", 6),
		"Status",
		"ID",
	}, "  ")

	rows := []string{st.Bold.Render(truncateLine(head, width))}
	for i, u := range users {
		rows = append(rows, UserRow(st, i+1, u, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// UserDetail is the read-only block shown by the profile and edit views.
func UserDetail(st Styles, u models.User) string {
	rows := [][2]string{
		{"First name", u.FirstName},
		{"Last name", u.LastName},
		{"Email", u.Email},
		{"Role", string(u.Role)},
		{"Status", string(u.Status)},
	}
	var b strings.Builder
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		b.WriteString(st.Muted.Render(padRight(r[0]+":", 12)))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

func truncateLine(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
