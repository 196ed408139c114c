package repositories

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateoffice/internal/models"
)

func newClientRepo(t *testing.T) (*ClientRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewClientRepository(db), mock
}

func clientColumns() []string {
	return []string{"id", "full_name", "phone", "email", "client_type", "created_at"}
}

func TestClientRepositoryGet(t *testing.T) {
	repo, mock := newClientRepo(t)

	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, full_name, phone, email, client_type, created_at FROM clients WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(clientColumns()).
			AddRow(7, "Ivan Petrov", "+77010000001", "ivan@example.com", "buyer", created))

	c, err := repo.Get(7)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 7, c.ID)
	assert.Equal(t, "Ivan Petrov", c.FullName)
	require.NotNil(t, c.Email)
	assert.Equal(t, "ivan@example.com", *c.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryGetMiss(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	c, err := repo.Get(404)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryGetNullEmail(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(clientColumns()).
			AddRow(3, "Anna K", "+77010000002", nil, "seller", time.Now()))

	c, err := repo.Get(3)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Nil(t, c.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryCreateAssignsID(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO clients (full_name, phone, email, client_type, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)).
		WithArgs("Ivan Petrov", "+77010000001", nil, "buyer", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	c := &models.Client{
		FullName:   "Ivan Petrov",
		Phone:      "+77010000001",
		ClientType: "buyer",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(c))
	assert.Equal(t, 42, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryList(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, full_name, phone, email, client_type, created_at FROM clients ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows(clientColumns()).
			AddRow(1, "A", "+1", nil, "buyer", time.Now()).
			AddRow(2, "B", "+2", nil, "seller", time.Now()))

	list, err := repo.List(100, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 2, list[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryListEmptyIsNotNil(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM clients ORDER BY id`).
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows(clientColumns()))

	list, err := repo.List(100, 0)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestClientRepositoryUpdate(t *testing.T) {
	repo, mock := newClientRepo(t)

	created := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(clientColumns()).
			AddRow(5, "Old Name", "+5", nil, "buyer", created))
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE clients SET full_name=$1, phone=$2, email=$3, client_type=$4 WHERE id=$5`)).
		WithArgs("New Name", "+5", nil, "buyer", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	name := "New Name"
	patch := &models.ClientPatch{FullName: &name}
	c, err := repo.Update(5, patch.Apply)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "New Name", c.FullName)
	// untouched fields survive the round trip
	assert.Equal(t, "+5", c.Phone)
	assert.Equal(t, "buyer", c.ClientType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryUpdateMiss(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	patch := &models.ClientPatch{}
	c, err := repo.Update(404, patch.Apply)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryDeleteReturnsPriorRecord(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE id = \$1`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(clientColumns()).
			AddRow(9, "Gone Soon", "+9", nil, "tenant", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id=$1`)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, err := repo.Delete(9)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Gone Soon", c.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepositoryGetByEmail(t *testing.T) {
	repo, mock := newClientRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM clients WHERE email = \$1`).
		WithArgs("dup@example.com").
		WillReturnRows(sqlmock.NewRows(clientColumns()).
			AddRow(1, "Dup", "+1", "dup@example.com", "buyer", time.Now()))

	c, err := repo.GetByEmail("dup@example.com")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, 1, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
