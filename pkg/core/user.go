package core

// User is the locally fabricated identity representing who is logged in.
// There is no server-side backing: registration and login both mint a
// fresh record, and at most one exists at a time.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
