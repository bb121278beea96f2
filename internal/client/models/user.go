package models

// User is the authenticated account as reported by the server.
// The zero value is meaningless; a session either holds a populated
// User or none at all.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
