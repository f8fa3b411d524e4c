package domain

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	default:
		return false
	}
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}

type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	Role         Role
}

// AuthUser identifies the caller of an authenticated request.
type AuthUser struct {
	ID   int64
	Role Role
}

func (u AuthUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManage reports whether the user may act on content owned by ownerID.
func (u AuthUser) CanManage(ownerID int64) bool {
	return u.IsAdmin() || u.ID == ownerID
}
