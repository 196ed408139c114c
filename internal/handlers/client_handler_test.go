package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateoffice/internal/repositories"
	"estateoffice/internal/services"
)

func newClientRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewClientHandler(services.NewClientService(repositories.NewClientRepository(db), nil))

	r := gin.New()
	r.POST("/clients/", h.Create)
	r.GET("/clients/:id", h.GetByID)
	r.PATCH("/clients/:id", h.Update)
	r.DELETE("/clients/:id", h.Delete)
	return r, mock
}

func clientRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "full_name", "phone", "email", "client_type", "created_at"})
}

func TestCreateClientOK(t *testing.T) {
	r, mock := newClientRouter(t)

	// phone pre-check misses, insert succeeds
	mock.ExpectQuery(`SELECT .+ FROM clients WHERE phone = \$1`).
		WithArgs("+77010000001").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO clients (full_name, phone, email, client_type, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)).
		WithArgs("Ivan Petrov", "+77010000001", nil, "buyer", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	body := `{"full_name":"Ivan Petrov","phone":"+77010000001","client_type":"buyer"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "Ivan Petrov", got["full_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClientDuplicatePhone(t *testing.T) {
	r, mock := newClientRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE phone = \$1`).
		WithArgs("+77010000001").
		WillReturnRows(clientRows().
			AddRow(1, "Existing", "+77010000001", nil, "buyer", time.Now()))

	body := `{"full_name":"Ivan Petrov","phone":"+77010000001"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone number already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	r, mock := newClientRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE email = \$1`).
		WithArgs("dup@example.com").
		WillReturnRows(clientRows().
			AddRow(1, "Existing", "+70000000000", "dup@example.com", "buyer", time.Now()))

	body := `{"full_name":"Ivan Petrov","phone":"+77010000001","email":"dup@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClientMissingRequiredField(t *testing.T) {
	r, _ := newClientRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/clients/", bytes.NewBufferString(`{"phone":"+1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetClientNotFound(t *testing.T) {
	r, mock := newClientRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clients/404", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Client not found")
}

func TestPatchClientNullFieldKeepsValue(t *testing.T) {
	r, mock := newClientRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(5).
		WillReturnRows(clientRows().
			AddRow(5, "Ivan Petrov", "+5", "keep@example.com", "buyer", time.Now()))
	// email stays in place although the body carried "email": null
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE clients SET full_name=$1, phone=$2, email=$3, client_type=$4 WHERE id=$5`)).
		WithArgs("Renamed", "+5", "keep@example.com", "buyer", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body := `{"full_name":"Renamed","email":null}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/clients/5", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "keep@example.com")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClient(t *testing.T) {
	r, mock := newClientRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(9).
		WillReturnRows(clientRows().
			AddRow(9, "Gone Soon", "+9", nil, "tenant", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id=$1`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/clients/9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Client deleted successfully"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClientNotFound(t *testing.T) {
	r, mock := newClientRouter(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/clients/404", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
