package testserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type harness struct {
	t   *testing.T
	srv *Server
	ts  *httptest.Server
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	srv, err := New(opts...)
	require.NoError(t, err)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return &harness{t: t, srv: srv, ts: ts}
}

func (h *harness) do(method, path, token string, body any) (int, envelope) {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, h.ts.URL+path, &buf)
	require.NoError(h.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return h.send(req, token)
}

func (h *harness) send(req *http.Request, token string) (int, envelope) {
	h.t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.ts.Client().Do(req)
	require.NoError(h.t, err)
	defer resp.Body.Close()
	var env envelope
	require.NoError(h.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (h *harness) login(email, password string) string {
	h.t.Helper()
	code, env := h.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(h.t, http.StatusOK, code, env.Message)
	var out []struct {
		Token string `json:"token"`
	}
	require.NoError(h.t, json.Unmarshal(env.Data, &out))
	require.Len(h.t, out, 1)
	return out[0].Token
}

func (h *harness) multipart(method, path, token string, fields map[string]string, file []byte, fileType string) (int, envelope) {
	h.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(h.t, w.WriteField(k, v))
	}
	if file != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="imageFile"; filename="f.bin"`)
		hdr.Set("Content-Type", fileType)
		part, err := w.CreatePart(hdr)
		require.NoError(h.t, err)
		_, err = part.Write(file)
		require.NoError(h.t, err)
	}
	require.NoError(h.t, w.Close())

	req, err := http.NewRequest(method, h.ts.URL+path, &buf)
	require.NoError(h.t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return h.send(req, token)
}

func TestToken_RoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tok, err := GenerateToken("u1", "admin", []byte("k"), now, time.Hour)
	require.NoError(t, err)

	c, err := ParseToken(tok, []byte("k"), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "u1", c.ID)
	assert.Equal(t, "admin", c.Role)

	_, err = ParseToken(tok, []byte("other"), now)
	assert.Error(t, err)
	_, err = ParseToken(tok, []byte("k"), now.Add(2*time.Hour))
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	h := newHarness(t)

	tok := h.login(AdminEmail, AdminPassword)
	assert.NotEmpty(t, tok)

	code, env := h.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": AdminEmail, "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid email or password", env.Message)
}

func TestAuthMiddleware(t *testing.T) {
	now := time.Now()
	var skew atomic.Int64
	h := newHarness(t, WithClock(func() time.Time { return now.Add(time.Duration(skew.Load())) }), WithTokenTTL(time.Minute))

	code, _ := h.do(http.MethodGet, "/api/article/allArticles", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = h.do(http.MethodGet, "/api/article/allArticles", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	tok := h.login(UserEmail, UserPassword)
	code, _ = h.do(http.MethodGet, "/api/article/allArticles", tok, nil)
	assert.Equal(t, http.StatusOK, code)

	skew.Store(int64(2 * time.Minute))
	code, _ = h.do(http.MethodGet, "/api/article/allArticles", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRegisterAndSetupPassword(t *testing.T) {
	h := newHarness(t)

	code, env := h.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"firstName": "New", "lastName": "Person", "email": "new@example.com",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, env.Message, "Registration successful")

	code, _ = h.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"firstName": "New", "lastName": "Person", "email": "new@example.com",
	})
	assert.Equal(t, http.StatusConflict, code)

	mail, ok := h.srv.LastMail("new@example.com")
	require.True(t, ok)
	assert.Equal(t, "setup", mail.Kind)

	pw := map[string]string{"password": "Str0ng!pw", "confirmPassword": "Str0ng!pw"}
	code, _ = h.do(http.MethodPost, "/api/auth/setup-password/"+mail.Token, "", pw)
	require.Equal(t, http.StatusOK, code)

	// a link works once
	code, env = h.do(http.MethodPost, "/api/auth/setup-password/"+mail.Token, "", pw)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid or expired token", env.Message)

	assert.NotEmpty(t, h.login("new@example.com", "Str0ng!pw"))
}

func TestForgotAndResetPassword(t *testing.T) {
	h := newHarness(t)

	code, _ := h.do(http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": "ghost@example.com"})
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, h.srv.Outbox())

	code, _ = h.do(http.MethodPost, "/api/auth/forgot-password", "", map[string]string{"email": UserEmail})
	require.Equal(t, http.StatusOK, code)
	mail, ok := h.srv.LastMail(UserEmail)
	require.True(t, ok)
	assert.Equal(t, "reset", mail.Kind)

	code, env := h.do(http.MethodPost, "/api/auth/reset-password/"+mail.Token, "",
		map[string]string{"password": "N3w!pass", "confirmPassword": "other"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Passwords do not match", env.Message)

	code, _ = h.do(http.MethodPost, "/api/auth/reset-password/"+mail.Token, "",
		map[string]string{"password": "N3w!pass", "confirmPassword": "N3w!pass"})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, h.login(UserEmail, "N3w!pass"))
}

func TestInactiveUserCannotLogin(t *testing.T) {
	h := newHarness(t)
	admin := h.login(AdminEmail, AdminPassword)
	uid, _ := h.srv.UserID(UserEmail)

	code, env := h.do(http.MethodPatch, "/api/user/status/"+uid, admin, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "User status updated to inactive", env.Message)

	code, env = h.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": UserEmail, "password": UserPassword})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Your account is inactive. Please contact support.", env.Message)
}

func TestArticles_ListFiltersAndPages(t *testing.T) {
	var (
		mu   sync.Mutex
		tick = time.Now()
	)
	h := newHarness(t, WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick = tick.Add(time.Second)
		return tick
	}))
	for _, title := range []string{"Go one", "Go two", "Rust three"} {
		_, ok := h.srv.SeedArticle(UserEmail, title, "body", "published")
		require.True(t, ok)
	}
	h.srv.SeedArticle(UserEmail, "My draft", "body", "draft")
	h.srv.SeedArticle(AdminEmail, "Admin draft", "body", "draft")

	tok := h.login(UserEmail, UserPassword)
	type page struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
		Total int `json:"total"`
	}
	list := func(q string) page {
		code, env := h.do(http.MethodGet, "/api/article/allArticles?"+q, tok, nil)
		require.Equal(t, http.StatusOK, code)
		var out []page
		require.NoError(t, json.Unmarshal(env.Data, &out))
		require.Len(t, out, 1)
		return out[0]
	}

	p := list("status=published&page=1&limit=2")
	assert.Equal(t, 3, p.Total)
	require.Len(t, p.Items, 2)
	assert.Equal(t, "Rust three", p.Items[0].Title, "newest first")

	p = list("status=published&page=2&limit=2")
	assert.Len(t, p.Items, 1)

	p = list("status=published&search=GO")
	assert.Equal(t, 2, p.Total)

	p = list("status=draft")
	require.Equal(t, 1, p.Total)
	assert.Equal(t, "My draft", p.Items[0].Title)

	p = list("status=published&page=9")
	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.Total)
}

func TestArticles_CRUD(t *testing.T) {
	h := newHarness(t)
	tok := h.login(UserEmail, UserPassword)
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	code, env := h.multipart(http.MethodPost, "/api/article/createArticle", tok,
		map[string]string{"title": "T", "content": "C"}, png, "image/png")
	require.Equal(t, http.StatusCreated, code, env.Message)
	var created struct {
		ID       string `json:"_id"`
		Status   string `json:"status"`
		ImageURL string `json:"imageUrl"`
		Author   struct {
			ID string `json:"_id"`
		} `json:"authorId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "draft", created.Status)
	assert.Contains(t, created.ImageURL, "/uploads/")
	uid, _ := h.srv.UserID(UserEmail)
	assert.Equal(t, uid, created.Author.ID)

	code, env = h.multipart(http.MethodPost, "/api/article/createArticle", tok,
		map[string]string{"title": "T", "content": "C"}, []byte("x"), "text/plain")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Only JPG, PNG or PDF allowed", env.Message)

	code, env = h.multipart(http.MethodPut, "/api/article/articles/"+created.ID, tok,
		map[string]string{"status": "published", "imageAction": "remove"}, nil, "")
	require.Equal(t, http.StatusOK, code, env.Message)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "published", updated["status"])
	assert.Equal(t, "T", updated["title"])
	assert.NotContains(t, updated, "imageUrl")

	admin := h.login(AdminEmail, AdminPassword)
	code, _ = h.do(http.MethodDelete, "/api/article/articles/"+created.ID, admin, nil)
	assert.Equal(t, http.StatusOK, code, "admins may delete any article")

	code, env = h.do(http.MethodGet, "/api/article/Articles/"+created.ID, tok, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Article not found", env.Message)
}

func TestArticles_ForeignDraftHidden(t *testing.T) {
	h := newHarness(t)
	id, _ := h.srv.SeedArticle(AdminEmail, "secret", "body", "draft")
	tok := h.login(UserEmail, UserPassword)

	code, _ := h.do(http.MethodGet, "/api/article/Articles/"+id, tok, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = h.multipart(http.MethodPut, "/api/article/articles/"+id, tok, map[string]string{"title": "x"}, nil, "")
	assert.Equal(t, http.StatusForbidden, code)
}

func TestUsers_AdminOnly(t *testing.T) {
	h := newHarness(t)
	user := h.login(UserEmail, UserPassword)
	admin := h.login(AdminEmail, AdminPassword)

	code, _ := h.do(http.MethodGet, "/api/user/all", user, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := h.do(http.MethodGet, "/api/user/all?page=1&limit=1", admin, nil)
	require.Equal(t, http.StatusOK, code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &users))
	assert.Len(t, users, 1)

	code, env = h.do(http.MethodPost, "/api/user/create", admin, map[string]string{
		"firstName": "Cal", "lastName": "Dee", "email": "cal@example.com", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	_, ok := h.srv.LastMail("cal@example.com")
	assert.True(t, ok)

	code, env = h.do(http.MethodPost, "/api/user/create", admin, map[string]string{
		"firstName": "Cal", "lastName": "Dee", "email": "x@example.com", "role": "root",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "role must be one of the following values: user, admin", env.Message)

	calID, _ := h.srv.UserID("cal@example.com")
	code, _ = h.do(http.MethodDelete, "/api/user/"+calID, admin, nil)
	assert.Equal(t, http.StatusOK, code)
	_, ok = h.srv.UserID("cal@example.com")
	assert.False(t, ok)
}

func TestUsers_SelfService(t *testing.T) {
	h := newHarness(t)
	tok := h.login(UserEmail, UserPassword)
	uid, _ := h.srv.UserID(UserEmail)
	adminID, _ := h.srv.UserID(AdminEmail)

	code, _ := h.do(http.MethodGet, "/api/user/"+uid, tok, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = h.do(http.MethodGet, "/api/user/"+adminID, tok, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := h.do(http.MethodPut, "/api/user/"+uid, tok, map[string]string{"firstName": "Umberto"})
	require.Equal(t, http.StatusOK, code)
	var u map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &u))
	assert.Equal(t, "Umberto", u["firstName"])

	code, _ = h.do(http.MethodPut, "/api/user/"+uid, tok, map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, code)
}
