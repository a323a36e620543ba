package service

import "errors"

var (
	// ErrUserNotFound means the email does not resolve to a lab user.
	ErrUserNotFound = errors.New("user not found")

	// ErrReasonNotFound means the visit reason name is not in the catalog.
	ErrReasonNotFound = errors.New("reason not found")

	// ErrOpenSessionExists rejects a check-in while the user still has an
	// open session.
	ErrOpenSessionExists = errors.New("user already has an open check-in")

	// ErrNoOpenSession rejects a check-out with nothing to close. Check-out
	// is deliberately not idempotent: a second call must fail with this.
	ErrNoOpenSession = errors.New("no open check-in found for this user")
)
