package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/api/internal/config"
	"storefront/api/internal/models"
	"storefront/api/internal/repository"
	"storefront/api/internal/security"
)

func sessionTestConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{
			JWTSecret:  "middleware-test-secret",
			SessionTTL: 240 * time.Hour,
		},
	}
}

func runSession(t *testing.T, cfg *config.AppConfig, mock pgxmock.PgxPoolIface, cookie *http.Cookie) *models.User {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var viewer *models.User
	router := gin.New()
	router.GET("/probe", Session(cfg, repository.NewUserRepository(mock)), func(c *gin.Context) {
		viewer = CurrentUser(c)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)
	return viewer
}

func TestSessionResolvesViewer(t *testing.T) {
	cfg := sessionTestConfig()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "email", "name", "password_hash", "permissions",
		"reset_token", "reset_token_expiry", "created_at", "updated_at",
	}).AddRow("user-1", "ada@example.com", "Ada", []byte("hash"), []string{"USER"}, nil, nil, now, now)
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs("user-1").
		WillReturnRows(rows)

	token, err := security.IssueSessionToken(cfg.Security.JWTSecret, "user-1", time.Hour)
	require.NoError(t, err)

	viewer := runSession(t, cfg, mock, &http.Cookie{Name: "token", Value: token})
	require.NotNil(t, viewer)
	assert.Equal(t, "user-1", viewer.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionAnonymousWithoutCookie(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	viewer := runSession(t, sessionTestConfig(), mock, nil)
	assert.Nil(t, viewer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionAnonymousWithBadToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	viewer := runSession(t, sessionTestConfig(), mock, &http.Cookie{Name: "token", Value: "garbage"})
	assert.Nil(t, viewer)
	assert.NoError(t, mock.ExpectationsWereMet())
}
