package auth

import (
	"context"
	"testing"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreAdminToken(ctx context.Context, token string, adminID int64) error {
	args := m.Called(ctx, token, adminID)
	return args.Error(0)
}

func (m *MockTokenStore) LookupAdminToken(ctx context.Context, token string) (int64, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	var stored *domain.User
	mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.User)
	}).Return(nil).Once()

	user, err := service.Signup(ctx, "rider1", "secret")

	assert.NoError(t, err)
	assert.Equal(t, "rider1", user.Username)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestAuthService_Signup_EmptyFields(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	_, err := service.Signup(ctx, "", "secret")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Signup(ctx, "rider1", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockUsers.AssertNotCalled(t, "Create")
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateUser).Once()

	_, err := service.Signup(ctx, "rider1", "secret")

	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	user := &domain.User{ID: 7, Username: "rider1", PasswordHash: hashOf(t, "secret")}
	mockUsers.On("GetByUsername", ctx, "rider1").Return(user, nil).Once()

	got, err := service.Login(ctx, "rider1", "secret")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	user := &domain.User{ID: 7, Username: "rider1", PasswordHash: hashOf(t, "secret")}
	mockUsers.On("GetByUsername", ctx, "rider1").Return(user, nil).Once()

	got, err := service.Login(ctx, "rider1", "wrong")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	mockUsers.On("GetByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()

	got, err := service.Login(ctx, "ghost", "secret")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_AdminLogin_IssuesHexToken(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockTokens := &MockTokenStore{}

	service := NewAuthService(mockUsers, mockTokens, bcrypt.MinCost)

	ctx := context.Background()

	admin := &domain.User{ID: 1, Username: "admin", PasswordHash: hashOf(t, "adminpassword"), IsAdmin: true}
	mockUsers.On("GetByUsername", ctx, "admin").Return(admin, nil).Once()
	mockTokens.On("StoreAdminToken", ctx, mock.AnythingOfType("string"), int64(1)).Return(nil).Once()

	token, err := service.AdminLogin(ctx, "admin", "adminpassword")

	assert.NoError(t, err)
	assert.Len(t, token, 32)
	assert.Regexp(t, "^[0-9a-f]+$", token)

	mockTokens.AssertExpectations(t)
}

func TestAuthService_AdminLogin_NonAdminRejected(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockTokens := &MockTokenStore{}

	service := NewAuthService(mockUsers, mockTokens, bcrypt.MinCost)

	ctx := context.Background()

	rider := &domain.User{ID: 7, Username: "rider1", PasswordHash: hashOf(t, "secret"), IsAdmin: false}
	mockUsers.On("GetByUsername", ctx, "rider1").Return(rider, nil).Once()

	token, err := service.AdminLogin(ctx, "rider1", "secret")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	mockTokens.AssertNotCalled(t, "StoreAdminToken")
}

func TestAuthService_ValidateAdminToken(t *testing.T) {
	mockUsers := &MockUserRepository{}
	mockTokens := &MockTokenStore{}

	service := NewAuthService(mockUsers, mockTokens, bcrypt.MinCost)

	ctx := context.Background()

	mockTokens.On("LookupAdminToken", ctx, "goodtoken").Return(int64(1), true, nil).Once()
	mockTokens.On("LookupAdminToken", ctx, "badtoken").Return(int64(0), false, nil).Once()

	id, err := service.ValidateAdminToken(ctx, "goodtoken")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = service.ValidateAdminToken(ctx, "badtoken")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = service.ValidateAdminToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_EnsureSeedAdmin_CreatesWhenMissing(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	var stored *domain.User
	mockUsers.On("GetByUsername", ctx, "admin").Return(nil, repository.ErrUserNotFound).Once()
	mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.User)
	}).Return(nil).Once()

	err := service.EnsureSeedAdmin(ctx, "admin", "adminpassword")

	assert.NoError(t, err)
	assert.True(t, stored.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("adminpassword")))
}

func TestAuthService_EnsureSeedAdmin_SkipsWhenPresent(t *testing.T) {
	mockUsers := &MockUserRepository{}

	service := NewAuthService(mockUsers, nil, bcrypt.MinCost)

	ctx := context.Background()

	mockUsers.On("GetByUsername", ctx, "admin").Return(&domain.User{ID: 1, Username: "admin", IsAdmin: true}, nil).Once()

	err := service.EnsureSeedAdmin(ctx, "admin", "adminpassword")

	assert.NoError(t, err)
	mockUsers.AssertNotCalled(t, "Create")
}
