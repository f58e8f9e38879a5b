package constants

// Role admin console. Semua endpoint /api/a minimal butuh RoleAdmin.
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)
