package dto

import "time"

// AccountSummary is the only account shape ever returned to a caller. The
// password hash stays inside the service boundary.
type AccountSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CreateAccountInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Company  string `json:"company"`
}

type UpdateProfileInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
}

type AccountOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Company   string    `json:"company,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Removed   bool      `json:"removed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
