package handlers

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateoffice/internal/repositories"
	"estateoffice/internal/services"
)

func newUserRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewUserHandler(services.NewUserService(repositories.NewUserRepository(db), services.NewAuthService()))

	r := gin.New()
	r.POST("/users/", h.Create)
	return r, mock
}

func TestCreateUserTrimsLogin(t *testing.T) {
	r, mock := newUserRouter(t)

	// the pre-check and the stored row both see the trimmed login
	mock.ExpectQuery(`SELECT .+ FROM users WHERE login = \$1`).
		WithArgs("agent1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("agent1", sqlmock.AnyArg(), "Agent One", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	body := `{"login":"  agent1  ","password":"s3cret","full_name":"Agent One"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"login":"agent1"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserBlankLogin(t *testing.T) {
	r, _ := newUserRouter(t)

	body := `{"login":"   ","password":"s3cret","full_name":"Agent One"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserDuplicateLogin(t *testing.T) {
	r, mock := newUserRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE login = \$1`).
		WithArgs("agent1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "login", "password_hash", "full_name", "position", "role"}).
			AddRow(1, "agent1", "x", "Agent One", "", ""))

	body := `{"login":"agent1","password":"s3cret","full_name":"Agent One"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Login already exists")
}
