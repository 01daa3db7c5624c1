package ui

import (
	"fmt"
	"strings"
)

// Skeleton is the placeholder shown while the first page loads.
func Skeleton(st Styles, rows, width int) string {
	if rows < 1 {
		rows = 1
	}
	if width < 10 {
		width = 10
	}
	long := strings.Repeat("░", width-4)
	short := strings.Repeat("░", (width-4)/2)

	cards := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		cards = append(cards, st.Card.Width(width-2).Render(st.Muted.Render(short+"\n"+long+"\n"+long)))
	}
	return strings.Join(cards, "\n")
}

// Pager is what the pagination footer needs to know.
type Pager struct {
	Page       int
	Pages      int
	Total      int
	TotalKnown bool
	HasMore    bool
	Loading    bool
}

// Pagination renders the footer under a list. With a known total it shows
// "Page 2 of 5"; otherwise only the navigation that is possible.
func Pagination(st Styles, p Pager) string {
	var parts []string
	if p.Page > 1 {
		parts = append(parts, "‹ prev")
	}
	if p.TotalKnown {
		pages := p.Pages
		if pages < 1 {
			pages = 1
		}
		parts = append(parts, fmt.Sprintf("Page %d of %d (%d total)", p.Page, pages, p.Total))
	} else {
		parts = append(parts, fmt.Sprintf("Page %d", p.Page))
	}
	if p.HasMore {
		parts = append(parts, "next ›")
	}
	line := strings.Join(parts, "  ")
	if p.Loading {
		line += "  " + st.Info.Render("loading…")
	}
	return st.Muted.Render(line)
}

// Empty is shown when a loaded list has nothing in it.
func Empty(st Styles, search string) string {
	if search != "" {
		return st.Muted.Render(fmt.Sprintf("No results for %q.", search))
	}
	return st.Muted.Render("Nothing here yet.")
}
