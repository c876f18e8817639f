package domain

type Role string

const (
	RoleCliente Role = "cliente"
	RoleLoja    Role = "loja"
	RoleAdmin   Role = "admin"
)

// Actor is the verified identity attached to a request by the auth
// boundary. StoreID is set only for loja actors.
type Actor struct {
	ID      string
	Role    Role
	StoreID string
}
