package constant

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

const SessionCookieName = "token"

// UnknownValue is stored in place of any geo field the resolver could not
// determine.
const UnknownValue = "unknown"
