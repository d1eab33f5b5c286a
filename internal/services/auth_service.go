package services

import (
	"errors"
	"fmt"
	"time"

	"wardrobe/internal/models"
	"wardrobe/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const minRawPasswordLen = 8

// AuthService handles registration, credential verification and token
// issuance. The signing key is process-scoped: it is handed in once at
// startup and never regenerated, otherwise previously issued tokens
// would stop verifying.
type AuthService struct {
	userRepo  repositories.UserRepository
	events    EventPublisher
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService. events may be nil.
func NewAuthService(userRepo repositories.UserRepository, events EventPublisher, jwtSecret string, tokenTTLMinutes int) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		events:    events,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(tokenTTLMinutes) * time.Minute,
	}
}

// RegisterInput carries the fields of a registration request. Password
// is the raw password; it is hashed before the record is built.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// Register validates and persists a new account with role USER. The
// raw password length is checked before hashing; all other rules run
// against the record with the hash substituted in.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	var violations []models.Violation
	if len(input.Password) < minRawPasswordLen {
		violations = append(violations, models.Violation{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters long", minRawPasswordLen),
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  input.Username,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Role:      models.RoleUser,
	}

	if err := checkStruct(user); err != nil {
		var ve *models.ValidationError
		if !errors.As(err, &ve) {
			return nil, err
		}
		violations = append(violations, ve.Violations...)
	}
	if len(violations) > 0 {
		return nil, &models.ValidationError{Violations: violations}
	}

	if err := ensureUnique(userLookup(s.userRepo.GetByUsername), "username", user.Username, ""); err != nil {
		return nil, err
	}
	if err := ensureUnique(userLookup(s.userRepo.GetByEmail), "email", user.Email, ""); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	publishEvent(s.events, "user.registered", map[string]string{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
	return user, nil
}

// Login verifies the credentials and issues a signed token with the
// username as subject. Unknown user and wrong password are reported
// identically so usernames cannot be enumerated.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("invalid credentials: %w", models.ErrAuthenticationFailed)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", models.ErrAuthenticationFailed)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   user.Username,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature and expiry of a token and
// returns its subject.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", models.ErrTokenInvalid
	}
	return claims.Subject, nil
}
