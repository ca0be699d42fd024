package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mehmood09/restaurant-system/middleware"
	"github.com/mehmood09/restaurant-system/models"
	"github.com/mehmood09/restaurant-system/services"
)

type stubUserRepo struct {
	users map[uuid.UUID]*models.User
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &stubUserRepo{users: make(map[uuid.UUID]*models.User)}
	tokens := services.NewTokenService("test-secret")
	authService := services.NewAuthService(users, tokens, zap.NewNop())
	controller := NewAuthController(authService)

	router := gin.New()
	router.POST("/register", controller.Register)
	router.POST("/login", controller.Login)
	router.POST("/logout", controller.Logout)
	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestRegisterEndpoint(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/register", models.RegisterRequest{
		Username:  "sana",
		FirstName: "Sana",
		LastName:  "Malik",
		Email:     "sana@example.com",
		Password:  "s3cret-pass",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	cookie := sessionCookie(w)
	assert.NotNil(t, cookie, "registration must set the session cookie")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, string(resp["user"]), "s3cret-pass", "the password must never leave the server")
}

func TestRegisterEndpoint_RejectsShortPassword(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/register", models.RegisterRequest{
		Username:  "sana",
		FirstName: "Sana",
		LastName:  "Malik",
		Email:     "sana@example.com",
		Password:  "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router := setupAuthRouter(t)
	postJSON(router, "/register", models.RegisterRequest{
		Username:  "sana",
		FirstName: "Sana",
		LastName:  "Malik",
		Email:     "sana@example.com",
		Password:  "s3cret-pass",
	})

	w := postJSON(router, "/login", models.LoginRequest{Username: "sana", Password: "s3cret-pass"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, sessionCookie(w))

	w = postJSON(router, "/login", models.LoginRequest{Username: "sana", Password: "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0, "logout must expire the cookie")
}
