package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed login. It deliberately
// does not distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidToken is returned when an admin token is unknown or expired.
var ErrInvalidToken = errors.New("invalid admin token")

// ErrInvalidInput is returned when a required field is empty.
var ErrInvalidInput = errors.New("username and password are required")

type AuthUseCase interface {
	Signup(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	AdminLogin(ctx context.Context, username, password string) (string, error)
	ValidateAdminToken(ctx context.Context, token string) (int64, error)
}

// TokenStore keeps issued admin tokens for later validation.
type TokenStore interface {
	StoreAdminToken(ctx context.Context, token string, adminID int64) error
	LookupAdminToken(ctx context.Context, token string) (int64, bool, error)
}

type AuthService struct {
	users      repository.UserRepository
	tokens     TokenStore
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, tokens TokenStore, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// AdminLogin verifies admin credentials and issues an opaque hex token,
// stored with a TTL so later requests can be validated against it.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	user, err := s.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !user.IsAdmin {
		return "", ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.tokens.StoreAdminToken(ctx, token, user.ID); err != nil {
		return "", fmt.Errorf("store admin token: %w", err)
	}
	return token, nil
}

func (s *AuthService) ValidateAdminToken(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	id, ok, err := s.tokens.LookupAdminToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// EnsureSeedAdmin creates the administrator account on first startup.
func (s *AuthService) EnsureSeedAdmin(ctx context.Context, username, password string) error {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	admin := &domain.User{Username: username, PasswordHash: string(hash), IsAdmin: true}
	if err := s.users.Create(ctx, admin); err != nil && !errors.Is(err, repository.ErrDuplicateUser) {
		return err
	}
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var _ AuthUseCase = (*AuthService)(nil)
