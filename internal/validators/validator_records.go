package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldID       = "id"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldUserID   = "user_id"
	FieldBlogID   = "blog_id"
	FieldPostID   = "post_id"
	FieldUpdate   = "update"
)

// RecordValidator checks the records accepted by the blog API before they
// reach the store. Comment bodies are never checked: an empty body is a
// valid comment.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Credentials:
		return v.validateUser(models.User{Email: value.Email, Password: value.Password}, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)

	case models.Blog:
		return v.validateBlog(value, fields...)
	case *models.Blog:
		return v.validateBlog(*value, fields...)

	case models.BlogUpdate:
		return v.validateBlogUpdate(value, fields...)

	case models.Post:
		return v.validatePost(value, fields...)
	case *models.Post:
		return v.validatePost(*value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(value, fields...)

	case models.Comment:
		return v.validateComment(value, fields...)
	case *models.Comment:
		return v.validateComment(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEmail:
			if !validEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateUserUpdate(update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdate, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUpdate:
			if update.Email == nil && update.Name == nil && update.Password == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldEmail:
			if update.Email != nil && !validEmail(*update.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if update.Password != nil && *update.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateBlog(blog models.Blog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blog.BlogID <= 0 {
				return ErrInvalidBlogID
			}
		case FieldUserID:
			if blog.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(blog.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateBlogUpdate(update models.BlogUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdate, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.BlogID <= 0 {
				return ErrInvalidBlogID
			}
		case FieldUpdate:
			if update.Name == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePost(post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlogID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if post.PostID <= 0 {
				return ErrInvalidPostID
			}
		case FieldBlogID:
			if post.BlogID <= 0 {
				return ErrInvalidBlogID
			}
		case FieldName:
			if strings.TrimSpace(post.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validatePostUpdate(update models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdate, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.PostID <= 0 {
				return ErrInvalidPostID
			}
		case FieldUpdate:
			if update.Name == nil && update.Body == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateComment(comment models.Comment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if comment.CommentID <= 0 {
				return ErrInvalidID
			}
		case FieldPostID:
			if comment.PostID <= 0 {
				return ErrInvalidPostID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1
}
