package ui

import "strings"

// Confirm renders a yes/no modal. The prompt always shows "No" as the
// default.
func Confirm(st Styles, title, text string) string {
	body := st.Error.Render(title)
	if text != "" {
		body += "\n" + text
	}
	body += "\n\n" + st.Muted.Render("[y/N]")
	return st.Modal.Render(body)
}

// ConfirmAnswer reports whether answer accepts the modal. Anything other than
// an explicit yes, including an empty line, declines.
func ConfirmAnswer(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
