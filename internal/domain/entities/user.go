package entities

// UserRole drives what a session is allowed to do.
//
// Stored values keep the original Portuguese labels.

type UserRole string

const (
	UserRoleManager    UserRole = "GESTOR"
	UserRoleTechnician UserRole = "TECNICO"
)

func (r UserRole) Valid() bool {
	return r == UserRoleManager || r == UserRoleTechnician
}

// User is an account of the dashboard.
//
// Email is the lookup key for login and profile updates. Password is kept in
// plaintext; hardening it is out of scope for this service.
type User struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password,omitempty"`
	Role     UserRole `json:"role"`
}

func (u User) GetID() string { return u.ID }

func (u User) WithID(id string) Record {
	u.ID = id
	return u
}

func (User) Collection() Collection { return CollectionUsers }
