package service

import (
	"context"
	"errors"
	"time"

	"github.com/maabu025/book-hubs/internal/models"
	"github.com/maabu025/book-hubs/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users     UserStore
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret), jwtTTL: ttl}
}

// ValidateRegister checks the registration payload.
func ValidateRegister(v *validator.Validator, username, email, password string) {
	v.Check(len(username) >= 3, "username", "must be at least 3 characters")
	v.Check(validator.Matches(email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(len(password) >= 6, "password", "must be at least 6 characters")
}

// ValidateLogin checks the login payload.
func ValidateLogin(v *validator.Validator, email, password string) {
	v.Check(validator.Matches(email, validator.EmailRX), "email", "must be a valid email address")
	v.Check(password != "", "password", "must be provided")
}

// Register creates a new account with role "user". Self-registration can
// never mint an admin.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.SignToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// SignToken issues a stateless HS256 token carrying the user id and role.
func (s *AuthService) SignToken(u *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID.Hex(),
		"role": u.Role,
		"exp":  time.Now().Add(s.jwtTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
