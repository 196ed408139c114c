package handlers

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateoffice/internal/models"
	"estateoffice/internal/repositories"
	"estateoffice/internal/services"
)

// fakePDF writes a marker file instead of a real document.
type fakePDF struct {
	dir  string
	got  *models.DealSummary
	fail error
}

func (f *fakePDF) GenerateDealSummary(data models.DealSummary) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	f.got = &data
	path := filepath.Join(f.dir, "deal_summary_test.pdf")
	if err := os.WriteFile(path, []byte("%PDF-fake"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func newDealRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *fakePDF) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gen := &fakePDF{dir: t.TempDir()}
	h := NewDealHandler(services.NewDealService(repositories.NewDealRepository(db), nil), gen)

	r := gin.New()
	r.POST("/deals/", h.Create)
	r.GET("/deals/:id/summary", h.DownloadSummary)
	return r, mock, gen
}

func expectDealInsert(mock sqlmock.Sqlmock, amount string, id int) {
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO deals (deal_type, real_estate_id, client_id, employee_id, deal_date, amount, status) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`)).
		WithArgs("sale", 1, 2, 3, sqlmock.AnyArg(), amount, "active").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

func postDeal(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/deals/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateDealNumericAmount(t *testing.T) {
	r, mock, _ := newDealRouter(t)

	expectDealInsert(mock, "100000", 7)

	w := postDeal(t, r, `{"deal_type":"sale","real_estate_id":1,"client_id":2,"employee_id":3,
		"deal_date":"2026-03-14","amount":100000,"status":"active"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	// number in, string out
	assert.Contains(t, w.Body.String(), `"amount":"100000"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDealStringAmount(t *testing.T) {
	r, mock, _ := newDealRouter(t)

	expectDealInsert(mock, "250000.50", 8)

	w := postDeal(t, r, `{"deal_type":"sale","real_estate_id":1,"client_id":2,"employee_id":3,
		"deal_date":"2026-03-14","amount":"250000.50","status":"active"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":"250000.50"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadDealSummary(t *testing.T) {
	r, mock, gen := newDealRouter(t)

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT d.id, d.deal_type, d.deal_date, d.amount`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "deal_type", "deal_date", "amount", "status", "client", "address", "employee"}).
			AddRow(42, "sale", date, "250000.00", "active", "Ivan Petrov", "Main St 1", "Agent One"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/deals/42/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "deal_summary_42.pdf")
	assert.Equal(t, "%PDF-fake", w.Body.String())

	require.NotNil(t, gen.got)
	assert.Equal(t, 42, gen.got.DealID)
	assert.Equal(t, "Ivan Petrov", gen.got.ClientName)
	assert.Equal(t, "2026-03-14", gen.got.DealDate.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDownloadDealSummaryNotFound(t *testing.T) {
	r, mock, gen := newDealRouter(t)

	mock.ExpectQuery(`SELECT d.id, d.deal_type, d.deal_date, d.amount`).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/deals/404/summary", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Deal not found")
	assert.Nil(t, gen.got)
}
