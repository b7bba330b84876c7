package utils

import "errors"

var (
	ErrTrekNotFound       = errors.New("trek not found")
	ErrTrekUnavailable    = errors.New("trek not available for booking")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPostNotFound       = errors.New("blog post not found")
	ErrFAQNotFound        = errors.New("faq not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrMediaNotFound      = errors.New("media item not found")
	ErrContactNotFound    = errors.New("contact submission not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidBooking     = errors.New("invalid booking request")
	ErrInvalidTrek        = errors.New("invalid trek payload")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrUploadFailed       = errors.New("media upload failed")
)
