package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("forbidden")
	ErrNotRegistered = errors.New("no phone number registered for this chat")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidMonth  = errors.New("invalid month")

	// ErrStageOrder signals a selection funnel invariant violation (e.g. month
	// chosen before year). It marks a programming error, never user input.
	ErrStageOrder = errors.New("selection stage order violated")

	ErrUnknownAction   = errors.New("unknown callback action")
	ErrDocumentToken   = errors.New("document token is invalid or expired")
	ErrDocumentMissing = errors.New("document not found in storage")
)
