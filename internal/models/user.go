// Package models defines the data types persisted by the application.
package models

// User is a locally registered account. The password is stored in plain
// text; there is no server and no real security guarantee by design of
// the local account system.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
