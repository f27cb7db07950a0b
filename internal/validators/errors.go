package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("email is required and must contain @")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidBlogID    = errors.New("invalid blog ID")
	ErrInvalidPostID    = errors.New("invalid post ID")
	ErrInvalidID        = errors.New("invalid ID")
	ErrEmptyName        = errors.New("name is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
