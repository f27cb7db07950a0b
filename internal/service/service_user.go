package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// SignUp validates user, stores a bcrypt hash of its password and returns the
// created record without credentials.
func (s *userService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("func", "*userService.SignUp").Msg("invalid user provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.SignUp").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = ""
	user.PasswordHash = hash

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	return created.Public(), nil
}

func (s *userService) Get(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i] = users[i].Public()
	}
	return users, nil
}

// Update applies a partial update. A new password is hashed before it
// reaches the repository.
func (s *userService) Update(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Debug().Err(err).Str("func", "*userService.Update").Msg("invalid user update provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.Update").Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		update.Password = nil
		update.PasswordHash = &hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, err
	}

	return updated.Public(), nil
}

func (s *userService) Delete(ctx context.Context, userID int64) error {
	if err := s.validator.Validate(ctx, models.User{UserID: userID}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.userRepository.DeleteUser(ctx, userID)
}
