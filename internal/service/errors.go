package service

import "errors"

// Domain errors. Handlers map these to HTTP statuses; anything else that
// bubbles out of a store is treated as an internal fault.
var (
	ErrEmailDomainNotAllowed  = errors.New("only institutional email addresses are allowed")
	ErrUserExists             = errors.New("user already exists")
	ErrStudentDetailsRequired = errors.New("year and branch are required for students")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrIncorrectPassword      = errors.New("current password is incorrect")
	ErrSelfDeletion           = errors.New("you cannot delete your own account")
	ErrUserNotFound           = errors.New("user not found")
	ErrEventNotFound          = errors.New("event not found")
	ErrLinkNotFound           = errors.New("registration link not found")
)
