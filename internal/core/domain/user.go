package domain

// User models a registered account. Only users with IsAdmin set may mutate
// posts and jobs; the flag is granted manually, never through registration.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
}
