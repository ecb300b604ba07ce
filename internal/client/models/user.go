// Package models defines the data records exchanged with the blog backend.
// Field names follow the server's JSON representation (Mongo-style "_id").
package models

// User is the profile record returned by the registration and "who am I"
// endpoints. It is replaced wholesale on every successful session fetch and
// cleared on logout or authentication failure.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
