package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIDMismatch means the identity in the request path does not match the
	// identity in the body.
	ErrIDMismatch = errors.New("path and body IDs do not match")

	// ErrInvalidRole means a role string outside the known set was supplied.
	ErrInvalidRole = errors.New("invalid role")

	// ErrLastAdmin means the operation would remove or demote the only
	// remaining Admin account, locking everyone out.
	ErrLastAdmin = errors.New("cannot remove the last admin account")
)
