package testserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/cryptox"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// register creates an inactive account and mails a setup link.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		fail(c, http.StatusBadRequest, "firstName, lastName and email are required")
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
		Role:      roleUser,
		Status:    statusInactive,
		CreatedAt: s.now(),
	}
	s.users[u.ID] = u
	if err := s.sendLinkLocked(c.Request.Context(), u, "setup"); err != nil {
		fail(c, http.StatusInternalServerError, "Could not send email")
		return
	}
	ok(c, http.StatusCreated, "Registration successful. Please check your email to set your password.", nil)
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	u := s.userByEmail(strings.TrimSpace(req.Email))
	var snapshot user
	if u != nil {
		snapshot = *u
	}
	s.mu.Unlock()

	if u == nil || snapshot.PasswordHash == "" {
		fail(c, http.StatusBadRequest, "Invalid email or password")
		return
	}
	match, err := cryptox.VerifyPassword(snapshot.PasswordHash, req.Password)
	if err != nil || !match {
		fail(c, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if snapshot.Status != statusActive {
		fail(c, http.StatusForbidden, "Your account is inactive. Please contact support.")
		return
	}

	token, err := GenerateToken(snapshot.ID, snapshot.Role, s.secret, s.now(), s.ttl)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Could not issue token")
		return
	}
	ok(c, http.StatusOK, "", []gin.H{{
		"message": "Login successful",
		"token":   token,
		"user":    userJSON(&snapshot),
	}})
}

// forgotPassword always answers the same way so it does not reveal which
// emails exist.
func (s *Server) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if u := s.userByEmail(strings.TrimSpace(req.Email)); u != nil {
		if err := s.sendLinkLocked(c.Request.Context(), u, "reset"); err != nil {
			fail(c, http.StatusInternalServerError, "Could not send email")
			return
		}
	}
	ok(c, http.StatusOK, "If that email is registered, a reset link has been sent.", nil)
}

// setPassword consumes a link token. A setup link also activates the account.
func (s *Server) setPassword(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req passwordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Password == "" || req.Password != req.ConfirmPassword {
			fail(c, http.StatusBadRequest, "Passwords do not match")
			return
		}

		hash, err := cryptox.HashPassword(req.Password)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Could not set password")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		tok := c.Param("token")
		id, found := s.links[tok]
		u := s.users[id]
		if !found || u == nil {
			fail(c, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		delete(s.links, tok)
		u.PasswordHash = hash
		if kind == "setup" {
			u.Status = statusActive
			ok(c, http.StatusOK, "Password set successfully. You can now log in.", nil)
			return
		}
		ok(c, http.StatusOK, "Password has been reset successfully.", nil)
	}
}
