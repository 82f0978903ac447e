package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio-admin/app/apperr"
	"portfolio-admin/app/models"
	"portfolio-admin/app/store"
)

// UserService owns the account lifecycle: signup, credential checks, admin
// provisioning and profile updates. Plaintext passwords never leave this
// package and are never logged.
type UserService struct {
	store store.Store
	cost  int
}

func NewUserService(st store.Store, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{store: st, cost: bcryptCost}
}

func (s *UserService) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func (s *UserService) create(name, username, email, password string, isAdmin bool) (*models.User, error) {
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateUser(u); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Signup registers a regular account. Admin status is never self-assigned.
func (s *UserService) Signup(name, username, email, password string) (*models.User, error) {
	return s.create(name, username, email, password, false)
}

// CreateAdmin persists a new admin account. Callers must have checked the
// requesting session's admin claim already.
func (s *UserService) CreateAdmin(name, username, email, password string) (*models.User, error) {
	return s.create(name, username, email, password, true)
}

// Authenticate checks an email/password pair. Unknown email and wrong
// password collapse into the same error so callers can't enumerate accounts.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	u, err := s.store.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetByID(id string) (*models.User, error) {
	u, err := s.store.GetUserByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile applies the supplied fields to the account. A password change
// requires the correct current password; on any failure the stored hash is
// left untouched.
func (s *UserService) UpdateProfile(id, name, username, email, currentPassword, newPassword string) (*models.User, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		u.Name = name
	}
	if username != "" {
		u.Username = username
	}
	if email != "" {
		u.Email = email
	}
	if newPassword != "" {
		if currentPassword == "" {
			return nil, apperr.ErrPasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
			return nil, apperr.ErrWrongPassword
		}
		hash, err := s.hash(newPassword)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.store.UpdateUser(u); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return nil, apperr.ErrEmailTaken
		case errors.Is(err, store.ErrNotFound):
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// EnsureAdmin seeds the initial admin account on first boot. A no-op when the
// email is already registered.
func (s *UserService) EnsureAdmin(name, username, email, password string) error {
	if _, err := s.store.GetUserByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	_, err := s.CreateAdmin(name, username, email, password)
	return err
}
