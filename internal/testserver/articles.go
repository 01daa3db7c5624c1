package testserver

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUpload = 5 << 20

var uploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

func articleJSON(a *article, author *user) gin.H {
	out := gin.H{
		"_id":       a.ID,
		"title":     a.Title,
		"content":   a.Content,
		"status":    a.Status,
		"createdAt": a.CreatedAt,
		"updatedAt": a.UpdatedAt,
		"authorId":  a.AuthorID,
	}
	if a.ImageURL != "" {
		out["imageUrl"] = a.ImageURL
	}
	if author != nil {
		out["authorId"] = gin.H{
			"_id":       author.ID,
			"firstName": author.FirstName,
			"lastName":  author.LastName,
			"email":     author.Email,
		}
	}
	return out
}

// visible reports whether u may see a. Drafts are private to their author
// and admins.
func visible(a *article, u user) bool {
	return a.Status != "draft" || a.AuthorID == u.ID || u.Role == roleAdmin
}

func canManage(a *article, u user) bool {
	return a.AuthorID == u.ID || u.Role == roleAdmin
}

func (s *Server) listArticles(c *gin.Context) {
	me := caller(c)
	page, limit := paging(c)
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	status := c.Query("status")

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*article
	for _, a := range s.sortedArticles() {
		if status != "" && a.Status != status {
			continue
		}
		// the drafts view only ever shows the caller's own drafts
		if a.Status == "draft" && a.AuthorID != me.ID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Title), search) &&
			!strings.Contains(strings.ToLower(a.Content), search) {
			continue
		}
		matched = append(matched, a)
	}

	start, end := window(len(matched), page, limit)
	items := make([]gin.H, 0, end-start)
	for _, a := range matched[start:end] {
		items = append(items, articleJSON(a, s.users[a.AuthorID]))
	}
	ok(c, http.StatusOK, "", []gin.H{{"items": items, "total": len(matched)}})
}

func (s *Server) getArticle(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, found := s.articles[c.Param("id")]
	if !found || !visible(a, caller(c)) {
		fail(c, http.StatusNotFound, "Article not found")
		return
	}
	ok(c, http.StatusOK, "", articleJSON(a, s.users[a.AuthorID]))
}

func (s *Server) createArticle(c *gin.Context) {
	me := caller(c)
	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	if title == "" || content == "" {
		fail(c, http.StatusBadRequest, "Title and content are required")
		return
	}
	status := c.DefaultPostForm("status", "draft")
	if status != "draft" && status != "published" {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	id := uuid.NewString()
	imageURL, msg := s.acceptUpload(c, id)
	if msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	a := &article{
		ID:        id,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		Status:    status,
		AuthorID:  me.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.articles[id] = a
	ok(c, http.StatusCreated, "Article created successfully", articleJSON(a, s.users[me.ID]))
}

// updateArticle applies the non-empty form fields. imageAction=remove drops
// the stored image; an imageFile part replaces it.
func (s *Server) updateArticle(c *gin.Context) {
	me := caller(c)
	id := c.Param("id")

	s.mu.Lock()
	a, found := s.articles[id]
	allowed := found && canManage(a, me)
	s.mu.Unlock()
	if !found {
		fail(c, http.StatusNotFound, "Article not found")
		return
	}
	if !allowed {
		fail(c, http.StatusForbidden, "You can only modify your own articles")
		return
	}

	status := c.PostForm("status")
	if status != "" && status != "draft" && status != "published" {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}
	imageURL, msg := s.acceptUpload(c, id)
	if msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, found = s.articles[id]
	if !found {
		fail(c, http.StatusNotFound, "Article not found")
		return
	}
	if v := strings.TrimSpace(c.PostForm("title")); v != "" {
		a.Title = v
	}
	if v := strings.TrimSpace(c.PostForm("content")); v != "" {
		a.Content = v
	}
	if status != "" {
		a.Status = status
	}
	switch {
	case c.PostForm("imageAction") == "remove":
		a.ImageURL = ""
	case imageURL != "":
		a.ImageURL = imageURL
	}
	a.UpdatedAt = s.now()
	ok(c, http.StatusOK, "Article updated successfully", articleJSON(a, s.users[a.AuthorID]))
}

func (s *Server) deleteArticle(c *gin.Context) {
	me := caller(c)
	s.mu.Lock()
	defer s.mu.Unlock()
	a, found := s.articles[c.Param("id")]
	if !found {
		fail(c, http.StatusNotFound, "Article not found")
		return
	}
	if !canManage(a, me) {
		fail(c, http.StatusForbidden, "You can only delete your own articles")
		return
	}
	delete(s.articles, a.ID)
	ok(c, http.StatusOK, "Article deleted successfully", nil)
}

// acceptUpload checks an optional imageFile part and returns the URL it
// would be served from, or a user-facing error message.
func (s *Server) acceptUpload(c *gin.Context, id string) (string, string) {
	fh, err := c.FormFile("imageFile")
	if err != nil {
		return "", ""
	}
	if fh.Size > maxUpload {
		return "", "File too large"
	}
	ct := fh.Header.Get("Content-Type")
	if !uploadTypes[ct] {
		return "", "Only JPG, PNG or PDF allowed"
	}
	return "/uploads/" + id + "/" + filepath.Base(fh.Filename), ""
}
