package services

import (
	"context"
	"sync"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/session"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

// fakeClient implements client.Client and records the arguments it saw.
type fakeClient struct {
	Calls []string

	RegisterMsg string
	LoginRet    models.AuthResult
	LoginErr    error
	ForgotMsg   string
	PasswordMsg string
	PasswordErr error

	ArticlePage models.ArticlePage
	ArticleRet  models.Article
	ArticleErr  error

	Users    []models.User
	UserRet  models.User
	UserErr  error
	Toggle   string
	ToggleEr error

	LastRegister models.RegisterInput
	LastLogin    models.LoginInput
	LastToken    string
	LastPassword models.PasswordInput
	LastList     client.ListParams
	LastID       string
	LastArticle  models.ArticleInput
	LastUser     models.UserInput
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) call(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Register(_ context.Context, in models.RegisterInput) (string, error) {
	f.call("Register")
	f.LastRegister = in
	return f.RegisterMsg, nil
}

func (f *fakeClient) Login(_ context.Context, in models.LoginInput) (models.AuthResult, error) {
	f.call("Login")
	f.LastLogin = in
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) (string, error) {
	f.call("ForgotPassword")
	f.LastLogin.Email = email
	return f.ForgotMsg, nil
}

func (f *fakeClient) ResetPassword(_ context.Context, token string, in models.PasswordInput) (string, error) {
	f.call("ResetPassword")
	f.LastToken, f.LastPassword = token, in
	return f.PasswordMsg, f.PasswordErr
}

func (f *fakeClient) SetupPassword(_ context.Context, token string, in models.PasswordInput) (string, error) {
	f.call("SetupPassword")
	f.LastToken, f.LastPassword = token, in
	return f.PasswordMsg, f.PasswordErr
}

func (f *fakeClient) ListArticles(_ context.Context, p client.ListParams) (models.ArticlePage, error) {
	f.call("ListArticles")
	f.LastList = p
	return f.ArticlePage, f.ArticleErr
}

func (f *fakeClient) GetArticle(_ context.Context, id string) (models.Article, error) {
	f.call("GetArticle")
	f.LastID = id
	return f.ArticleRet, f.ArticleErr
}

func (f *fakeClient) CreateArticle(_ context.Context, in models.ArticleInput) (models.Article, error) {
	f.call("CreateArticle")
	f.LastArticle = in
	return f.ArticleRet, f.ArticleErr
}

func (f *fakeClient) UpdateArticle(_ context.Context, id string, in models.ArticleInput) (models.Article, error) {
	f.call("UpdateArticle")
	f.LastID, f.LastArticle = id, in
	return f.ArticleRet, f.ArticleErr
}

func (f *fakeClient) DeleteArticle(_ context.Context, id string) error {
	f.call("DeleteArticle")
	f.LastID = id
	return f.ArticleErr
}

func (f *fakeClient) ListUsers(_ context.Context, p client.ListParams) ([]models.User, error) {
	f.call("ListUsers")
	f.LastList = p
	return f.Users, f.UserErr
}

func (f *fakeClient) GetUser(_ context.Context, id string) (models.User, error) {
	f.call("GetUser")
	f.LastID = id
	return f.UserRet, f.UserErr
}

func (f *fakeClient) CreateUser(_ context.Context, in models.UserInput) (models.User, error) {
	f.call("CreateUser")
	f.LastUser = in
	return f.UserRet, f.UserErr
}

func (f *fakeClient) UpdateUser(_ context.Context, id string, in models.UserInput) (models.User, error) {
	f.call("UpdateUser")
	f.LastID, f.LastUser = id, in
	return f.UserRet, f.UserErr
}

func (f *fakeClient) ToggleUserStatus(_ context.Context, id string) (string, error) {
	f.call("ToggleUserStatus")
	f.LastID = id
	return f.Toggle, f.ToggleEr
}

func (f *fakeClient) DeleteUser(_ context.Context, id string) error {
	f.call("DeleteUser")
	f.LastID = id
	return f.UserErr
}

// memStore is an in-memory SessionStore.
type memStore struct {
	mu  sync.Mutex
	s   session.Session
	err error
}

func (m *memStore) Get(context.Context) (session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, m.err
}

func (m *memStore) Update(_ context.Context, s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.s = s
	return nil
}

func (m *memStore) UpdateUser(_ context.Context, u session.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.s.Authenticated() {
		return common.ErrNoSession
	}
	m.s.User = u
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = session.Session{}
	return nil
}
