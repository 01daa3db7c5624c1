package testserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

const (
	roleAdmin = "admin"
	roleUser  = "user"

	statusActive   = "active"
	statusInactive = "inactive"

	ctxUserKey = "hub.user"
)

func (s *Server) routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(s.recovery())
	r.Use(s.requestLog())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.POST("/forgot-password", s.forgotPassword)
		auth.POST("/reset-password/:token", s.setPassword("reset"))
		auth.POST("/setup-password/:token", s.setPassword("setup"))

		articles := api.Group("/article", s.requireAuth())
		articles.GET("/allArticles", s.listArticles)
		articles.GET("/Articles/:id", s.getArticle)
		articles.POST("/createArticle", s.createArticle)
		articles.PUT("/articles/:id", s.updateArticle)
		articles.DELETE("/articles/:id", s.deleteArticle)

		users := api.Group("/user", s.requireAuth())
		users.GET("/all", s.requireAdmin(), s.listUsers)
		users.POST("/create", s.requireAdmin(), s.createUser)
		users.PATCH("/status/:id", s.requireAdmin(), s.toggleUser)
		users.GET("/:id", s.getUser)
		users.PUT("/:id", s.updateUser)
		users.DELETE("/:id", s.requireAdmin(), s.deleteUser)
	}

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "Route not found")
	})
	return r
}

func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				s.log.Error(c.Request.Context(), "panic recovered", "error", err)
				fail(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"request_id", c.GetHeader(common.RequestIDHeaderName),
		}
		switch {
		case status >= 500:
			s.log.Error(c.Request.Context(), "request completed", args...)
		case status >= 400:
			s.log.Warn(c.Request.Context(), "request completed", args...)
		default:
			s.log.Debug(c.Request.Context(), "request completed", args...)
		}
	}
}

// requireAuth checks the bearer token and loads the caller. Unknown,
// expired and inactive callers all get 401.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := ParseToken(raw, s.secret, s.now())
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		s.mu.Lock()
		u, ok := s.users[claims.ID]
		var caller user
		if ok {
			caller = *u
		}
		s.mu.Unlock()
		if !ok || caller.Status != statusActive {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Set(ctxUserKey, caller)
		c.Next()
	}
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller(c).Role != roleAdmin {
			fail(c, http.StatusForbidden, "Access denied")
			return
		}
		c.Next()
	}
}

func caller(c *gin.Context) user {
	v, _ := c.Get(ctxUserKey)
	u, _ := v.(user)
	return u
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}

func ok(c *gin.Context, status int, msg string, data any) {
	body := gin.H{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// paging reads page and limit, defaulting to 1 and 10.
func paging(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	limit, _ = strconv.Atoi(c.Query("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func window(n, page, limit int) (int, int) {
	start := (page - 1) * limit
	if start > n {
		start = n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}
