package repositories

import (
	"database/sql"

	"estateoffice/internal/models"
)

var userSpec = EntitySpec[models.User, int]{
	Table:     "users",
	KeyColumn: "id",
	Columns:   []string{"id", "login", "password_hash", "full_name", "position", "role"},
	ScanRow: func(row rowScanner) (*models.User, error) {
		var u models.User
		if err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.FullName, &u.Position, &u.Role); err != nil {
			return nil, err
		}
		return &u, nil
	},
	InsertColumns: []string{"login", "password_hash", "full_name", "position", "role"},
	InsertArgs: func(u *models.User) []any {
		return []any{u.Login, u.PasswordHash, u.FullName, u.Position, u.Role}
	},
	UpdateColumns: []string{"login", "password_hash", "full_name", "position", "role"},
	UpdateArgs: func(u *models.User) []any {
		return []any{u.Login, u.PasswordHash, u.FullName, u.Position, u.Role}
	},
	Key:       func(u *models.User) int { return u.ID },
	AssignKey: func(u *models.User, id int) { u.ID = id },
}

type UserRepository struct {
	*Repository[models.User, int]
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{NewRepository(db, userSpec)}
}

func (r *UserRepository) GetByLogin(login string) (*models.User, error) {
	return r.GetBy("login", login)
}
