package models

// User is a staff member of the agency.
type User struct {
	ID           int    `json:"id"`
	Login        string `json:"login"`
	PasswordHash string `json:"-"` // bcrypt, never serialized
	FullName     string `json:"full_name"`
	Position     string `json:"position"`
	Role         string `json:"role"`
}

// UserPatch carries the fields a PATCH request may change. Password, when
// present, must already be hashed by the service before Apply runs.
type UserPatch struct {
	Login    *string `json:"login"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
	Position *string `json:"position"`
	Role     *string `json:"role"`
}

func (p *UserPatch) Apply(u *User) {
	if p.Login != nil {
		u.Login = *p.Login
	}
	if p.Password != nil {
		u.PasswordHash = *p.Password
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Position != nil {
		u.Position = *p.Position
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID   int    `json:"user_id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
