package auth

const (
	// RoleStaff can manage menus and read bills.
	RoleStaff = "staff"
	// RoleDiner is carried by session tokens, never by user accounts.
	RoleDiner = "diner"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
