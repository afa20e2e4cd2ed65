package models

// User is a demo identity from the fixed credential list.
type User struct {
	UserID string `json:"userid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"` // "customer" or "farmer"
}
