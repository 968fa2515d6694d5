package services

// Roles recognised by the application.
const (
	RoleSeller = "seller"
	RoleBuyer  = "buyer"
)

// Identity is the authenticated caller as established by the transport
// layer (JWT middleware). A zero Identity means unauthenticated.
type Identity struct {
	Email string
	Role  string
}
