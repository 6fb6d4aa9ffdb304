package services

import (
	"errors"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// Sentinel errors shared across the workflow services. Handlers map these to
// HTTP statuses: ErrNotFound -> 404, ErrForbidden -> 403, the rest -> 400.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrOwnPet               = errors.New("you cannot apply to adopt your own pet")
	ErrDuplicateApplication = errors.New("you already have an active adoption request for this pet")
	ErrNotPending           = errors.New("this adoption request has already been decided")

	ErrCannotSend   = errors.New("you are not allowed to send messages in this thread")
	ErrNoRecipient  = errors.New("no approved adopter found for this pet")
	ErrEmptyContent = errors.New("message content cannot be empty")
)

// reportNotifyFailure implements the notification policy: the state change
// has already persisted, so a failed email is logged and reported, never
// returned to the caller.
func reportNotifyFailure(action string, err error) {
	slog.Error("email notification failed", "action", action, "error", err)
	sentry.CaptureException(err)
}
