package testserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func userJSON(u *user) gin.H {
	return gin.H{
		"_id":       u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"email":     u.Email,
		"role":      u.Role,
		"status":    u.Status,
	}
}

type userRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// listUsers pages through all accounts. The response carries no total.
func (s *Server) listUsers(c *gin.Context) {
	page, limit := paging(c)
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*user
	for _, u := range s.sortedUsers() {
		hay := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.Email)
		if search != "" && !strings.Contains(hay, search) {
			continue
		}
		matched = append(matched, u)
	}
	start, end := window(len(matched), page, limit)
	out := make([]gin.H, 0, end-start)
	for _, u := range matched[start:end] {
		out = append(out, userJSON(u))
	}
	ok(c, http.StatusOK, "", out)
}

func (s *Server) getUser(c *gin.Context) {
	me := caller(c)
	id := c.Param("id")
	if me.ID != id && me.Role != roleAdmin {
		fail(c, http.StatusForbidden, "Access denied")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, found := s.users[id]
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	ok(c, http.StatusOK, "", userJSON(u))
}

// createUser adds an inactive account and mails it a setup link.
func (s *Server) createUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		fail(c, http.StatusBadRequest, "firstName, lastName and email are required")
		return
	}
	if req.Role == "" {
		req.Role = roleUser
	}
	if req.Role != roleUser && req.Role != roleAdmin {
		fail(c, http.StatusBadRequest, "role must be one of the following values: user, admin")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userByEmail(req.Email) != nil {
		fail(c, http.StatusConflict, "User already exists")
		return
	}
	u := &user{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
		Status:    statusInactive,
		CreatedAt: s.now(),
	}
	s.users[u.ID] = u
	if err := s.sendLinkLocked(c.Request.Context(), u, "setup"); err != nil {
		fail(c, http.StatusInternalServerError, "Could not send email")
		return
	}
	ok(c, http.StatusCreated, "User created successfully", userJSON(u))
}

// updateUser lets a user edit themselves and an admin edit anyone. Only an
// admin may change a role.
func (s *Server) updateUser(c *gin.Context) {
	me := caller(c)
	id := c.Param("id")
	if me.ID != id && me.Role != roleAdmin {
		fail(c, http.StatusForbidden, "Access denied")
		return
	}
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Role != "" && req.Role != roleUser && req.Role != roleAdmin {
		fail(c, http.StatusBadRequest, "role must be one of the following values: user, admin")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, found := s.users[id]
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if email := strings.TrimSpace(req.Email); email != "" && !strings.EqualFold(email, u.Email) {
		if s.userByEmail(email) != nil {
			fail(c, http.StatusConflict, "Email already in use")
			return
		}
		u.Email = email
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Role != "" && req.Role != u.Role {
		if me.Role != roleAdmin {
			fail(c, http.StatusForbidden, "Only admins can change roles")
			return
		}
		u.Role = req.Role
	}
	ok(c, http.StatusOK, "User updated successfully", userJSON(u))
}

func (s *Server) toggleUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, found := s.users[c.Param("id")]
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if u.Status == statusActive {
		u.Status = statusInactive
	} else {
		u.Status = statusActive
	}
	ok(c, http.StatusOK, "User status updated to "+u.Status, nil)
}

func (s *Server) deleteUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, found := s.users[id]; !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	delete(s.users, id)
	for k, a := range s.articles {
		if a.AuthorID == id {
			delete(s.articles, k)
		}
	}
	ok(c, http.StatusOK, "User deleted successfully", nil)
}
