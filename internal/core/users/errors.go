package users

import "errors"

var (
	// ErrUserNotFound indicates no account exists with that username
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username taken")

	// ErrInvalidUsername indicates the username fails the length bound or
	// contains non-alphanumeric characters
	ErrInvalidUsername = errors.New("username must be between 3 and 40 alphanumeric characters")

	// ErrInvalidPassword indicates the password fails the length bound or
	// misses a required character class
	ErrInvalidPassword = errors.New("password must contain a lower/uppercase letter, a number, and be between 8 and 256 characters")

	// ErrInvalidCredentials indicates a failed login attempt; unknown
	// usernames and wrong passwords are deliberately indistinguishable
	ErrInvalidCredentials = errors.New("invalid username or password")
)
