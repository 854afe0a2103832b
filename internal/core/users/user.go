package users

import "time"

// Validation bounds for user fields
const (
	UsernameMin = 3
	UsernameMax = 40
	PasswordMin = 8
	PasswordMax = 256
)

// User represents a registered account. The username is the unique key the
// rest of the system uses as its author/creator reference.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	PasswordHash []byte    `json:"-" db:"password_hash"`
}
