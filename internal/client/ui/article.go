package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

const excerptLen = 120

// CardOptions control which action hints a card shows.
type CardOptions struct {
	Width     int
	Index     int
	CanEdit   bool
	CanManage bool
}

// ArticleCard renders one list entry: title, author, status, an excerpt
// and the commands available to the viewer.
func ArticleCard(st Styles, a models.Article, opt CardOptions) string {
	width := opt.Width
	if width < 20 {
		width = 20
	}
	inner := width - 4

	var b strings.Builder
	title := a.Title
	if opt.Index > 0 {
		title = fmt.Sprintf("%d. %s", opt.Index, title)
	}
	b.WriteString(st.Title.Render(truncate(title, inner)))
	b.WriteString("\n")

	meta := []string{"id " + a.ID}
	if a.AuthorName != "" {
		meta = append(meta, "by "+a.AuthorName)
	}
	if !a.CreatedAt.IsZero() {
		meta = append(meta, a.CreatedAt.Format("2006-01-02"))
	}
	b.WriteString(st.Muted.Render(truncate(strings.Join(meta, " · "), inner)))
	b.WriteString(" ")
	b.WriteString(statusBadge(st, a.Status))
	b.WriteString("\n")

	if ex := excerpt(a.Content, excerptLen); ex != "" {
		b.WriteString(st.Body.Width(inner).Render(ex))
		b.WriteString("\n")
	}
	if a.ImageURL != "" {
		b.WriteString(st.Muted.Render("[image]"))
		b.WriteString("\n")
	}

	if actions := cardActions(a, opt, true); actions != "" {
		b.WriteString(st.Badge.Render(actions))
	}
	return st.Card.Width(width - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func cardActions(a models.Article, opt CardOptions, withShow bool) string {
	var acts []string
	if withShow {
		acts = append(acts, "show "+a.ID)
	}
	if opt.CanEdit {
		acts = append(acts, "edit "+a.ID)
	}
	if opt.CanManage {
		if a.Status == models.ArticleDraft {
			acts = append(acts, "publish "+a.ID)
		}
		acts = append(acts, "delete "+a.ID)
	}
	return strings.Join(acts, " | ")
}

func statusBadge(st Styles, s models.ArticleStatus) string {
	if s == models.ArticleDraft {
		return st.Draft.Render("[draft]")
	}
	if s == "" {
		return ""
	}
	return st.Badge.Render("[" + string(s) + "]")
}

// excerpt collapses whitespace and shortens content for list views.
func excerpt(content string, n int) string {
	return truncate(strings.Join(strings.Fields(content), " "), n)
}

// Markdown renders article bodies. The zero value is not usable; build one
// with NewMarkdown.
type Markdown struct {
	r *glamour.TermRenderer
}

// NewMarkdown builds a renderer for the given style ("dark", "light",
// "notty", ...) wrapping at width.
func NewMarkdown(style string, width int) (*Markdown, error) {
	if style == "" {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	return &Markdown{r: r}, nil
}

func (m *Markdown) Render(md string) string {
	out, err := m.r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// ArticleDetail renders the full article view.
func ArticleDetail(st Styles, md *Markdown, a models.Article, opt CardOptions) string {
	parts := []string{st.Title.Render(a.Title)}

	meta := []string{}
	if a.AuthorName != "" {
		meta = append(meta, "by "+a.AuthorName)
	}
	if !a.CreatedAt.IsZero() {
		meta = append(meta, "created "+a.CreatedAt.Format("2006-01-02 15:04"))
	}
	if !a.UpdatedAt.IsZero() && !a.UpdatedAt.Equal(a.CreatedAt) {
		meta = append(meta, "updated "+a.UpdatedAt.Format("2006-01-02 15:04"))
	}
	line := st.Muted.Render(strings.Join(meta, " · "))
	if b := statusBadge(st, a.Status); b != "" {
		line += " " + b
	}
	parts = append(parts, line)

	if a.ImageURL != "" {
		parts = append(parts, st.Muted.Render("image: "+a.ImageURL))
	}
	body := a.Content
	if md != nil {
		body = md.Render(a.Content)
	}
	parts = append(parts, "", body)

	if acts := cardActions(a, opt, false); acts != "" {
		parts = append(parts, "", st.Badge.Render(acts))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
