package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthExpired       = errors.New("session token expired")
	ErrAuthFailed        = errors.New("authentication failed")
	ErrAlreadyRegistered = errors.New("account already registered")
	ErrConfiguration     = errors.New("configuration error")
	ErrNoCredentials     = errors.New("no credentials found")
	ErrNoTokens          = errors.New("no session tokens found")
)

// ServiceError is a failed round-trip to the remote service. Status is zero
// for transport and decode failures.
type ServiceError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	case e.Status != 0 && e.Body != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Body)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": service error"
	}
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
