package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token(context.Context) string { return string(s) }

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL+"/", opts...)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewHTTPClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPClient("localhost:5000")
	require.Error(t, err)
}

func TestDo_AttachesBearerAndRequestID(t *testing.T) {
	var got http.Header
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		assert.Equal(t, "/api/user/u1", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"_id": "u1", "firstName": "Ann"}})
	}, WithTokenSource(staticToken("tok-1")))
	c.newRequestID = func() string { return "req-42" }

	u, err := c.GetUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.FirstName)
	assert.Equal(t, "Bearer tok-1", got.Get("Authorization"))
	assert.Equal(t, "req-42", got.Get("X-Request-ID"))
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]any{"message": "sent"})
	}, WithTokenSource(staticToken("")))

	msg, err := c.ForgotPassword(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "sent", msg)
	assert.Empty(t, auth)
}

func TestDo_UnauthorizedRunsHandler(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Token expired"})
	}, WithUnauthorizedHandler(func(context.Context) { calls.Add(1) }))

	_, err := c.ListUsers(context.Background(), ListParams{Page: 1, Limit: 10})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Token expired", err.Error())
	assert.EqualValues(t, 1, calls.Load())

	err = c.DeleteArticle(context.Background(), "a1")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualValues(t, 2, calls.Load())
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusInternalServerError, want: ErrUnavailable},
		{status: http.StatusBadGateway, want: ErrUnavailable},
	}
	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})
			_, err := c.GetArticle(context.Background(), "x")
			require.ErrorIs(t, err, tc.want)

			var re *ResponseError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tc.status, re.StatusCode)
		})
	}
}

func TestDo_BadRequestKeepsMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "Email already exists"})
	})

	_, err := c.CreateUser(context.Background(), models.UserInput{Email: "a@b.co"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "Email already exists", Message(err, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("x"), "fallback"))
}

func TestDo_Canceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListArticles(ctx, ListParams{})
	require.ErrorIs(t, err, ErrCanceled)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestDo_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	srv.Close()

	_, err = c.GetArticle(context.Background(), "x")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListArticles_QueryAndEnvelope(t *testing.T) {
	var query map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/article/allArticles", r.URL.Path)
		query = map[string]string{}
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{map[string]any{
			"items": []any{map[string]any{"_id": "a1", "title": "One"}, map[string]any{"_id": "a2", "title": "Two"}},
			"total": 12,
		}}})
	})

	page, err := c.ListArticles(context.Background(), ListParams{Page: 2, Limit: 5, Search: "go lang", Status: "draft"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"page": "2", "limit": "5", "search": "go lang", "status": "draft"}, query)
	assert.Equal(t, 12, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a2", page.Items[1].ID)
}

func TestListUsers_EmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{}})
	})

	users, err := c.ListUsers(context.Background(), ListParams{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLogin_DecodesWrappedResult(t *testing.T) {
	var body map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]any{"data": []any{map[string]any{
			"message": "Login successful",
			"token":   "jwt",
			"user":    map[string]any{"_id": "u1", "role": "admin"},
		}}})
	})

	res, err := c.Login(context.Background(), models.LoginInput{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
	assert.Equal(t, map[string]string{"email": "a@b.co", "password": "secret1"}, body)
}

func TestLogin_MissingToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"message": "ok"}})
	})

	_, err := c.Login(context.Background(), models.LoginInput{})
	require.ErrorIs(t, err, ErrEmptyData)
}

func TestResetPassword_EscapesToken(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		writeJSON(w, http.StatusOK, map[string]any{"message": "Password updated"})
	})

	msg, err := c.ResetPassword(context.Background(), "a/b", models.PasswordInput{Password: "x", ConfirmPassword: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Password updated", msg)
	assert.Equal(t, "/api/auth/reset-password/a%2Fb", path)
}

func TestCreateArticle_Multipart(t *testing.T) {
	img := filepath.Join(t.TempDir(), "cover.png")
	require.NoError(t, os.WriteFile(img, []byte("\x89PNG\r\n\x1a\n0000IHDRfake"), 0o600))

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/article/createArticle", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Title", r.FormValue("title"))
		assert.Equal(t, "Body", r.FormValue("content"))
		assert.Equal(t, "draft", r.FormValue("status"))

		f, hdr, err := r.FormFile("imageFile")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "cover.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		b, _ := io.ReadAll(f)
		assert.Equal(t, "\x89PNG", string(b[:4]))

		writeJSON(w, http.StatusCreated, map[string]any{"data": map[string]any{"_id": "new", "title": "Title", "status": "draft"}})
	})

	a, err := c.CreateArticle(context.Background(), models.ArticleInput{
		Title: "Title", Content: "Body", Status: models.ArticleDraft, ImagePath: img,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", a.ID)
}

func TestUpdateArticle_RemoveImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/article/articles/a1", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "remove", r.FormValue("imageAction"))
		assert.Equal(t, "published", r.FormValue("status"))
		_, hasTitle := r.MultipartForm.Value["title"]
		assert.False(t, hasTitle)
		assert.Empty(t, r.MultipartForm.File)
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"_id": "a1", "status": "published"}})
	})

	a, err := c.UpdateArticle(context.Background(), "a1", models.ArticleInput{
		Status: models.ArticlePublished, ImagePath: "ignored.png", ImageAction: models.ImageRemove,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ArticlePublished, a.Status)
}

func TestUpdateArticle_KeepImageSendsNoFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.MultipartForm.File)
		assert.Empty(t, r.FormValue("imageAction"))
		writeJSON(w, http.StatusOK, map[string]any{"_id": "a1"})
	})

	_, err := c.UpdateArticle(context.Background(), "a1", models.ArticleInput{Title: "T", ImagePath: "x.png", ImageAction: models.ImageKeep})
	require.NoError(t, err)
}

func TestCreateArticle_MissingFile(t *testing.T) {
	var hits atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })

	_, err := c.CreateArticle(context.Background(), models.ArticleInput{Title: "T", ImagePath: filepath.Join(t.TempDir(), "nope.png")})
	require.Error(t, err)
	assert.Zero(t, hits.Load())
}

func TestToggleAndDeleteUser(t *testing.T) {
	var seen []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			writeJSON(w, http.StatusOK, map[string]any{"message": "User status updated"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	msg, err := c.ToggleUserStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "User status updated", msg)
	require.NoError(t, c.DeleteUser(context.Background(), "u1"))

	assert.Equal(t, []string{"PATCH /api/user/status/u1", "DELETE /api/user/u1"}, seen)
}
