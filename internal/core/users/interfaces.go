package users

import "context"

// Service defines the business logic interface for user accounts
type Service interface {
	// Register validates the credentials and creates the account
	Register(ctx context.Context, username, password string) (*User, error)

	// Authenticate checks a password against the stored hash.
	// Returns ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// GetUser retrieves an account by username
	GetUser(ctx context.Context, username string) (*User, error)
}

// Repository defines the data access interface for users
type Repository interface {
	// Create inserts a new account
	Create(ctx context.Context, user *User) error

	// GetByUsername retrieves an account by its unique username
	// Returns ErrUserNotFound if no row exists
	GetByUsername(ctx context.Context, username string) (*User, error)
}
