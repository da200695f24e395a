package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/domain/entity"
	repo "github.com/devforum/backend/internal/domain/repository"
	"github.com/devforum/backend/internal/interface/middleware"
	"github.com/devforum/backend/pkg/helpers"
	"github.com/devforum/backend/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

// memUserRepo is the minimal in-memory store the handler tests need.
type memUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range m.users {
		if e.Email == u.Email {
			return repo.ErrEmailTaken
		}
		if e.UserName == u.UserName {
			return repo.ErrUsernameTaken
		}
	}
	m.seq++
	if u.ID == "" {
		u.ID = fmt.Sprintf("u%d", m.seq)
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) GetByUserName(_ context.Context, userName string) (*entity.User, error) {
	for _, u := range m.users {
		if u.UserName == userName {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	return m.GetByID(ctx, id)
}

func (m *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func authRouter() (*gin.Engine, *helpers.JWTManager) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := application.NewAuthService(newMemUserRepo(), nil, jwt, nil, "", nil)
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/profile", middleware.RequireAuth(jwt), h.Profile)
	r.POST("/api/auth/verify-token", middleware.RequireAuth(jwt), h.VerifyToken)
	return r, jwt
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestSignupEndpoint(t *testing.T) {
	r, _ := authRouter()

	w := postJSON(r, "/api/auth/signup", gin.H{
		"name": "Ada Lovelace", "userName": "ada",
		"email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decode(t, w)
	require.True(t, env.Success)

	var data struct {
		Token string            `json:"token"`
		User  entity.PublicUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	require.Equal(t, "ada", data.User.UserName)
	require.Equal(t, entity.RoleUser, data.User.Role)
}

func TestSignupEndpointValidation(t *testing.T) {
	r, _ := authRouter()

	// short password
	w := postJSON(r, "/api/auth/signup", gin.H{
		"name": "Ada", "userName": "ada",
		"email": "ada@example.com", "password": "12345",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// bad email
	w = postJSON(r, "/api/auth/signup", gin.H{
		"name": "Ada", "userName": "ada",
		"email": "not-an-email", "password": "secret1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupEndpointDuplicateEmail(t *testing.T) {
	r, _ := authRouter()

	payload := gin.H{
		"name": "Ada", "userName": "ada",
		"email": "ada@example.com", "password": "secret1",
	}
	w := postJSON(r, "/api/auth/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	payload["userName"] = "ada2"
	w = postJSON(r, "/api/auth/signup", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := authRouter()

	w := postJSON(r, "/api/auth/signup", gin.H{
		"name": "Ada", "userName": "ada",
		"email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/auth/login", gin.H{"email": "ada@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/api/auth/login", gin.H{"email": "ada@example.com", "password": "wrong-password"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/api/auth/login", gin.H{"email": "nobody@example.com", "password": "secret1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileAndVerifyEndpoints(t *testing.T) {
	r, _ := authRouter()

	w := postJSON(r, "/api/auth/signup", gin.H{
		"name": "Ada", "userName": "ada",
		"email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"userName":"ada"`)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"email":"ada@example.com"`)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
