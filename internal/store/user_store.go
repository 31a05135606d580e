package store

import (
	"errors"
	"strings"

	"lostfound_portal/internal/domain" // Importing domain models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// UserStore persists user records with salted password hashes
type UserStore struct {
	db *gorm.DB // Database handle
}

// NewUserStore returns a UserStore bound to the given database
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register hashes the password and inserts a new user. The plaintext is
// never persisted. Returns ErrDuplicateEmail if the email is already taken;
// the unique index resolves concurrent signups racing on the same email.
func (s *UserStore) Register(name, rollNo, branch, email, password string) (*domain.User, error) {
	// Hash the password before persisting
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err // Return error if hashing fails
	}
	user := domain.User{
		Name:     name,                   // Display name
		RollNo:   rollNo,                 // Roll number
		Branch:   branch,                 // Branch label
		Email:    strings.ToLower(email), // Lowercase email to ensure uniqueness
		Password: string(hash),           // Hashed password
	}
	// Attempt to create the user in the database
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, ErrDuplicateEmail // Unique index violated
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks up a user by email. Returns ErrNotFound if absent.
func (s *UserStore) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID looks up a user by primary key. Returns ErrNotFound if absent.
func (s *UserStore) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyPassword compares a plaintext password against the stored hash
func (s *UserStore) VerifyPassword(user *domain.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// Authenticate combines lookup and hash verification. Unknown email and
// wrong password collapse into the same ErrInvalidCredentials so callers
// cannot tell which half was wrong.
func (s *UserStore) Authenticate(email, password string) (*domain.User, error) {
	user, err := s.FindByEmail(email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}
	if !s.VerifyPassword(user, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
