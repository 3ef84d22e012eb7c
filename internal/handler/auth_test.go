package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/task-tracker/internal/config"
	"github.com/iliyamo/task-tracker/internal/handler"
	"github.com/iliyamo/task-tracker/internal/utils"
)

func testCfg() config.Config {
	return config.Config{
		JWTSecret:    "handler-test-secret",
		AccessTTLMin: 60,
		BcryptCost:   bcrypt.MinCost, // keep tests fast
	}
}

func jsonCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister_Success(t *testing.T) {
	e := echo.New()
	h := handler.NewAuthHandler(testCfg(), newMemUserStore())

	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID    uint64 `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotZero(t, resp.User.ID)
	assert.NotContains(t, rec.Body.String(), "password")

	// The token must be immediately usable.
	uid, err := utils.ParseAccessToken(testCfg().JWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, uid)
}

func TestRegister_MissingFields(t *testing.T) {
	e := echo.New()
	h := handler.NewAuthHandler(testCfg(), newMemUserStore())

	for _, body := range []string{
		`{"email":"a@b.c","password":"x"}`,
		`{"name":"A","password":"x"}`,
		`{"name":"A","email":"a@b.c"}`,
		`{}`,
	} {
		c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register", body)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e := echo.New()
	h := handler.NewAuthHandler(testCfg(), newMemUserStore())

	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonCtx(e, http.MethodPost, "/api/auth/register",
		`{"name":"Other Alice","email":"alice@example.com","password":"other"}`)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestLogin_UnknownAccount(t *testing.T) {
	e := echo.New()
	h := handler.NewAuthHandler(testCfg(), newMemUserStore())

	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"x"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_BadPassword(t *testing.T) {
	e := echo.New()
	users := newMemUserStore()
	h := handler.NewAuthHandler(testCfg(), users)

	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"right"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonCtx(e, http.MethodPost, "/api/auth/login",
		`{"email":"bob@example.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterThenLogin(t *testing.T) {
	e := echo.New()
	users := newMemUserStore()
	h := handler.NewAuthHandler(testCfg(), users)

	c, rec := jsonCtx(e, http.MethodPost, "/api/auth/register",
		`{"name":"Carol","email":"carol@example.com","password":"pw123"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = jsonCtx(e, http.MethodPost, "/api/auth/login",
		`{"email":"carol@example.com","password":"pw123"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID uint64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	uid, err := utils.ParseAccessToken(testCfg().JWTSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, uid)
}
