package service

import "errors"

// Sentinel errors shared by the services. Handlers translate these to HTTP
// status codes; services never shape HTTP responses themselves.
var (
	ErrIDRequired       = errors.New("id is required")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("not the owner")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrOwnSurvey        = errors.New("cannot respond to own survey")
	ErrAlreadyResponded = errors.New("already responded to this survey")
	ErrInvalidURL       = errors.New("survey url is invalid or unreachable")
	ErrInvalidTheme     = errors.New("unknown theme")
	ErrTitleRequired    = errors.New("title is required")
	ErrNameRequired     = errors.New("display name is required")
	ErrReaderNil        = errors.New("reader is nil")
	ErrNoAvatar         = errors.New("no avatar uploaded")
)
