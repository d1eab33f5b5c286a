package services

import (
	"fmt"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles the account's own profile operations. Every
// operation is keyed by username, which callers take from the verified
// token subject.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Get retrieves an account by its username.
func (s *UserService) Get(username string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username: %w", models.ErrInvalidArgument)
	}
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	return user, nil
}

// Update merges a partial update into the stored account. A set
// password is length-checked raw and re-hashed before the merge; role
// and identifier are never touched by the patch.
func (s *UserService) Update(username string, patch models.UserPatch) (*models.User, error) {
	user, err := s.Get(username)
	if err != nil {
		return nil, err
	}

	if patch.Password.Set {
		if len(patch.Password.Value) < minRawPasswordLen {
			return nil, &models.ValidationError{Violations: []models.Violation{{
				Field:   "password",
				Message: fmt.Sprintf("must be at least %d characters long", minRawPasswordLen),
			}}}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(patch.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.Password.Value = string(hashed)
	}

	if patch.Username.Set {
		if err := ensureUnique(userLookup(s.repo.GetByUsername), "username", patch.Username.Value, user.ID); err != nil {
			return nil, err
		}
	}
	if patch.Email.Set {
		if err := ensureUnique(userLookup(s.repo.GetByEmail), "email", patch.Email.Value, user.ID); err != nil {
			return nil, err
		}
	}

	merged := patch.Apply(*user)
	if err := checkStruct(&merged); err != nil {
		return nil, err
	}
	if err := s.repo.Update(&merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the account with the given username.
func (s *UserService) Delete(username string) error {
	user, err := s.Get(username)
	if err != nil {
		return err
	}
	return s.repo.Delete(user.ID)
}
