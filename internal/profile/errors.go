package profile

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidName        = errors.New("name must be at least 2 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidYear        = errors.New("year must be one of Freshman, Sophomore, Junior, Senior, Graduate")
	ErrInvalidStressLevel = errors.New("stress level must be low, medium, high or a number from 0 to 10")
)
