package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unionadmin/backend/internal/domain/identity"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/auth"
	"github.com/unionadmin/backend/internal/infrastructure/config"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByCode(ctx context.Context, code string) (*identity.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, query shared.ListQuery) ([]identity.User, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]identity.User), args.Get(1).(int64), args.Error(2)
}

// MockRoleRepository is a mock implementation of RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*identity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context, query shared.ListQuery) ([]identity.Role, int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]identity.Role), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoleRepository) ReplacePermissions(ctx context.Context, role *identity.Role, permissions []identity.Permission) error {
	args := m.Called(ctx, role, permissions)
	return args.Error(0)
}

// =============================================================================
// Helpers
// =============================================================================

func testActor() shared.ActorRef {
	return shared.ActorRef{ID: uuid.New(), Email: "admin@union.local"}
}

func newAuthService(userRepo identity.UserRepository) (*AuthService, auth.RefreshTokenStore) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-with-32-characters",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "union-backend-test",
	})
	store := auth.NewInMemoryRefreshTokenStore()
	return NewAuthService(userRepo, jwtService, store), store
}

func newUserWithRole(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("member@union.local", "correct-horse", "An Nguyen", testActor())
	assert.NoError(t, err)
	user.Code = "STU00001"

	role, err := identity.NewRole("treasurer", "", testActor())
	assert.NoError(t, err)
	perm, err := identity.NewPermission("Create receipts", "receipts", "create")
	assert.NoError(t, err)
	role.Permissions = []identity.Permission{*perm}

	user.RoleID = &role.ID
	user.Role = role
	return user
}

// =============================================================================
// AuthService Tests
// =============================================================================

func TestAuthService_Login(t *testing.T) {
	t.Run("issues tokens carrying role permissions", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		user := newUserWithRole(t)

		userRepo.On("FindByEmail", mock.Anything, "member@union.local").Return(user, nil)

		resp, err := service.Login(context.Background(), LoginRequest{
			Email:    "member@union.local",
			Password: "correct-horse",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "STU00001", resp.User.Code)
	})

	t.Run("wrong password yields the same error as unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		user := newUserWithRole(t)

		userRepo.On("FindByEmail", mock.Anything, "member@union.local").Return(user, nil)
		userRepo.On("FindByEmail", mock.Anything, "ghost@union.local").Return(nil, shared.ErrNotFound)

		_, errWrongPassword := service.Login(context.Background(), LoginRequest{
			Email:    "member@union.local",
			Password: "wrong",
		})
		_, errUnknownEmail := service.Login(context.Background(), LoginRequest{
			Email:    "ghost@union.local",
			Password: "whatever",
		})

		assert.EqualError(t, errWrongPassword, errUnknownEmail.Error())
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Run("rotates the pair and revokes the old refresh token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)
		user := newUserWithRole(t)

		userRepo.On("FindByEmail", mock.Anything, "member@union.local").Return(user, nil)
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		login, err := service.Login(context.Background(), LoginRequest{
			Email:    "member@union.local",
			Password: "correct-horse",
		})
		assert.NoError(t, err)

		refreshed, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: login.RefreshToken})
		assert.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)

		// The first refresh token was superseded by the rotation
		_, err = service.Refresh(context.Background(), RefreshRequest{RefreshToken: login.RefreshToken})
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service, _ := newAuthService(userRepo)

		_, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: "not-a-token"})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	userRepo := new(MockUserRepository)
	service, _ := newAuthService(userRepo)
	user := newUserWithRole(t)

	userRepo.On("FindByEmail", mock.Anything, "member@union.local").Return(user, nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	login, err := service.Login(context.Background(), LoginRequest{
		Email:    "member@union.local",
		Password: "correct-horse",
	})
	assert.NoError(t, err)

	assert.NoError(t, service.Logout(context.Background(), user.ID))

	_, err = service.Refresh(context.Background(), RefreshRequest{RefreshToken: login.RefreshToken})
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

// =============================================================================
// UserService Tests
// =============================================================================

func TestUserService_Create(t *testing.T) {
	t.Run("registers an account with a role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		roleRepo := new(MockRoleRepository)
		service := NewUserService(userRepo, roleRepo)
		actor := testActor()

		role, err := identity.NewRole("member", "", actor)
		assert.NoError(t, err)

		roleRepo.On("FindByID", mock.Anything, role.ID).Return(role, nil)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == "an@union.local" && u.RoleID != nil && *u.RoleID == role.ID
		})).Return(nil)

		resp, err := service.Create(context.Background(), CreateUserRequest{
			Email:    "An@Union.Local",
			Password: "long-enough",
			FullName: "An Nguyen",
			RoleID:   &role.ID,
		}, actor)

		assert.NoError(t, err)
		assert.Equal(t, "an@union.local", resp.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("propagates the duplicate email conflict", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		service := NewUserService(userRepo, new(MockRoleRepository))

		userRepo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		_, err := service.Create(context.Background(), CreateUserRequest{
			Email:    "an@union.local",
			Password: "long-enough",
			FullName: "An Nguyen",
		}, testActor())

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo, new(MockRoleRepository))
	actor := testActor()

	user, err := identity.NewUser("an@union.local", "old-password", "An Nguyen", actor)
	assert.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	t.Run("rejects a wrong current password", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password",
		}, actor)

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("replaces the hash on success", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), user.ID, ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		}, actor)

		assert.NoError(t, err)
		assert.True(t, user.CheckPassword("new-password"))
		assert.False(t, user.CheckPassword("old-password"))
	})
}
