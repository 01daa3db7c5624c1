package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/listing"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
)

var st = DefaultStyles()

func sampleArticle() models.Article {
	return models.Article{
		ID:         "a1",
		Title:      "Hello",
		Content:    "Some   body\ntext",
		Status:     models.ArticleDraft,
		AuthorID:   "u1",
		AuthorName: "Ann Lee",
		CreatedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestArticleCard(t *testing.T) {
	out := ArticleCard(st, sampleArticle(), CardOptions{Width: 60, Index: 2, CanEdit: true, CanManage: true})
	assert.Contains(t, out, "2. Hello")
	assert.Contains(t, out, "by Ann Lee")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "[draft]")
	assert.Contains(t, out, "Some body text")
	assert.Contains(t, out, "edit a1")
	assert.Contains(t, out, "publish a1")
	assert.Contains(t, out, "delete a1")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestArticleCard_ReaderSeesNoActions(t *testing.T) {
	a := sampleArticle()
	a.Status = models.ArticlePublished
	out := ArticleCard(st, a, CardOptions{Width: 60})
	assert.Contains(t, out, "show a1")
	assert.NotContains(t, out, "edit a1")
	assert.NotContains(t, out, "delete a1")
	assert.Contains(t, out, "[published]")
}

func TestArticleCard_PublishedHasNoPublishAction(t *testing.T) {
	a := sampleArticle()
	a.Status = models.ArticlePublished
	out := ArticleCard(st, a, CardOptions{Width: 60, CanManage: true})
	assert.NotContains(t, out, "publish a1")
	assert.Contains(t, out, "delete a1")
}

func TestArticleDetail(t *testing.T) {
	md, err := NewMarkdown("notty", 60)
	require.NoError(t, err)

	a := sampleArticle()
	a.Content = "plain words here"
	a.ImageURL = "http://img/x.png"
	out := ArticleDetail(st, md, a, CardOptions{CanEdit: true})
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "plain words here")
	assert.Contains(t, out, "image: http://img/x.png")
	assert.Contains(t, out, "edit a1")
	assert.NotContains(t, out, "show a1")
}

func TestArticleDetail_NoRenderer(t *testing.T) {
	out := ArticleDetail(st, nil, sampleArticle(), CardOptions{})
	assert.Contains(t, out, "Some   body")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "…", truncate("abcd", 1))
	assert.Equal(t, "", truncate("abcd", 0))
	assert.Equal(t, "żó…", truncate("żółw!", 3))
}

func TestUserTable(t *testing.T) {
	users := []models.User{
		{ID: "u1", FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Role: models.RoleAdmin, Status: models.StatusActive},
		{ID: "u2", FirstName: "Bob", LastName: "Ray", Email: "bob@example.com", Role: models.RoleUser, Status: models.StatusInactive},
	}
	out := UserTable(st, users, 120)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Email")
	assert.Contains(t, lines[1], "Ann Lee")
	assert.Contains(t, lines[1], "active")
	assert.Contains(t, lines[2], "inactive")
	assert.Contains(t, lines[2], "u2")

	assert.Contains(t, UserTable(st, nil, 80), "No users found.")
}

func TestUserDetail(t *testing.T) {
	out := UserDetail(st, models.User{FirstName: "Ann", Email: "ann@example.com"})
	assert.Contains(t, out, "First name:")
	assert.Contains(t, out, "ann@example.com")
	assert.NotContains(t, out, "Role:")
}

func TestSkeleton(t *testing.T) {
	out := Skeleton(st, 3, 40)
	assert.Equal(t, 3, strings.Count(out, "╭"))
	assert.Contains(t, out, "░")
}

func TestPagination(t *testing.T) {
	assert.Equal(t, "Page 1 of 3 (25 total)  next ›",
		Pagination(st, Pager{Page: 1, Pages: 3, Total: 25, TotalKnown: true, HasMore: true}))
	assert.Equal(t, "‹ prev  Page 3 of 3 (25 total)",
		Pagination(st, Pager{Page: 3, Pages: 3, Total: 25, TotalKnown: true}))
	assert.Equal(t, "Page 1 of 1 (0 total)", Pagination(st, Pager{Page: 1, TotalKnown: true}))
	assert.Equal(t, "‹ prev  Page 2  next ›", Pagination(st, Pager{Page: 2, HasMore: true}))
	assert.Contains(t, Pagination(st, Pager{Page: 1, Loading: true}), "loading…")
}

func TestEmpty(t *testing.T) {
	assert.Contains(t, Empty(st, "go"), `No results for "go".`)
	assert.Contains(t, Empty(st, ""), "Nothing here yet.")
}

func TestConfirm(t *testing.T) {
	out := Confirm(st, "Delete article?", "This cannot be undone.")
	assert.Contains(t, out, "Delete article?")
	assert.Contains(t, out, "[y/N]")

	for _, in := range []string{"y", "Y", " yes ", "YES"} {
		assert.True(t, ConfirmAnswer(in), in)
	}
	for _, in := range []string{"", "n", "no", "sure", "yep"} {
		assert.False(t, ConfirmAnswer(in), in)
	}
}

func TestToaster(t *testing.T) {
	var buf bytes.Buffer
	toast := NewToaster(&buf, st)
	var _ listing.Notifier = toast
	var _ Notifier = toast

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			toast.Info("tick")
		}()
	}
	wg.Wait()
	toast.Success("saved")
	toast.Error("boom")

	out := buf.String()
	assert.Equal(t, 10, strings.Count(out, "ℹ tick\n"))
	assert.Contains(t, out, "✔ saved\n")
	assert.Contains(t, out, "✖ boom\n")
}

func TestNavbar(t *testing.T) {
	assert.Contains(t, Navbar(st, nil, 60), "not signed in")

	u := &models.User{FirstName: "Ann", LastName: "Lee", Role: models.RoleAdmin}
	out := Navbar(st, u, 60)
	assert.Contains(t, out, "Articles Hub")
	assert.Contains(t, out, "Ann Lee (admin)")
	assert.Equal(t, 60, lipgloss.Width(out))

	assert.Contains(t, Navbar(st, &models.User{Email: "x@y.z"}, 40), "x@y.z")
}

func TestSidebar_ActiveRoute(t *testing.T) {
	out := Sidebar(st, AdminNav, "/articles/new")
	assert.Contains(t, out, "▸ New article")
	assert.NotContains(t, out, "▸ Articles")

	out = Sidebar(st, AdminNav, "/articles/42")
	assert.Contains(t, out, "▸ Articles")

	out = Sidebar(st, UserNav, "/login")
	assert.NotContains(t, out, "▸")
}

func TestMenu(t *testing.T) {
	m := &Menu{Items: UserNav}
	assert.False(t, m.IsOpen())
	assert.NotContains(t, m.View(st), "Profile")

	m.Toggle()
	assert.True(t, m.IsOpen())
	assert.Contains(t, m.View(st), "Profile")

	m.Close()
	assert.False(t, m.IsOpen())
}

func TestStrengthBar(t *testing.T) {
	assert.Equal(t, "░░░░░ Very weak", StrengthBar(st, -1))
	assert.Equal(t, "███░░ Fair", StrengthBar(st, 3))
	assert.Equal(t, "█████ Strong", StrengthBar(st, 9))
}
