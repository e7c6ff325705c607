package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/identity"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// UserService handles member account operations
type UserService struct {
	userRepo identity.UserRepository
	roleRepo identity.RoleRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, roleRepo identity.RoleRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

// Create registers a member account. The STU code is allocated by the
// repository inside the insert transaction.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest, actor shared.ActorRef) (*UserResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "user", "create")
	defer span.End()

	user, err := identity.NewUser(req.Email, req.Password, req.FullName, actor)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(req.FullName, req.Gender, req.Phone, req.Address, dateOfBirth, actor); err != nil {
		return nil, err
	}

	if req.RoleID != nil {
		if _, err := s.roleRepo.FindByID(ctx, *req.RoleID); err != nil {
			return nil, err
		}
		user.AssignRole(req.RoleID, actor)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a member account by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByCode retrieves a member account by STU code
func (s *UserService) GetByCode(ctx context.Context, code string) (*UserResponse, error) {
	user, err := s.userRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves member accounts matching the query with pagination
func (s *UserService) List(ctx context.Context, query shared.ListQuery) ([]UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToUserResponses(users), total, nil
}

// Update patches a member's profile
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest, actor shared.ActorRef) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(req.FullName, req.Gender, req.Phone, req.Address, dateOfBirth, actor); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// ChangePassword changes a member's password after verifying the current one
func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req ChangePasswordRequest, actor shared.ActorRef) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.CheckPassword(req.CurrentPassword) {
		return shared.NewDomainError("UNAUTHORIZED", "Current password is incorrect")
	}

	if err := user.ChangePassword(req.NewPassword, actor); err != nil {
		return err
	}

	return s.userRepo.Save(ctx, user)
}

// AssignRole sets or clears a member's role
func (s *UserService) AssignRole(ctx context.Context, id uuid.UUID, req AssignRoleRequest, actor shared.ActorRef) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoleID != nil {
		if _, err := s.roleRepo.FindByID(ctx, *req.RoleID); err != nil {
			return nil, err
		}
	}
	user.AssignRole(req.RoleID, actor)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	// Reload so the response carries the refreshed role and permissions
	user, err = s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete soft-deletes a member account
func (s *UserService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.userRepo.Save(ctx, user)
}
