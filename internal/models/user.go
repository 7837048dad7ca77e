package models

const (
	RoleAdmin = "admin"
	RoleKasir = "kasir"
)

// User is an acting cashier identity. The user table is a hardcoded demo
// credential set; it is not a security mechanism.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}
