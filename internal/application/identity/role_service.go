package identity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/identity"
	"github.com/unionadmin/backend/internal/domain/shared"
)

// RoleService handles role and permission administration
type RoleService struct {
	roleRepo       identity.RoleRepository
	permissionRepo identity.PermissionRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo identity.RoleRepository, permissionRepo identity.PermissionRepository) *RoleService {
	return &RoleService{
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
	}
}

// Create creates a role
func (s *RoleService) Create(ctx context.Context, req CreateRoleRequest, actor shared.ActorRef) (*RoleResponse, error) {
	role, err := identity.NewRole(req.Name, req.Description, actor)
	if err != nil {
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// GetByID retrieves a role with its permissions
func (s *RoleService) GetByID(ctx context.Context, id uuid.UUID) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// List retrieves roles matching the query with pagination
func (s *RoleService) List(ctx context.Context, query shared.ListQuery) ([]RoleResponse, int64, error) {
	roles, total, err := s.roleRepo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return ToRoleResponses(roles), total, nil
}

// Update patches a role's name and description
func (s *RoleService) Update(ctx context.Context, id uuid.UUID, req UpdateRoleRequest, actor shared.ActorRef) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := role.Update(req.Name, req.Description, actor); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}

	response := ToRoleResponse(role)
	return &response, nil
}

// ReplacePermissions swaps a role's permission set wholesale. Every
// referenced permission must exist.
func (s *RoleService) ReplacePermissions(ctx context.Context, id uuid.UUID, req ReplacePermissionsRequest, actor shared.ActorRef) (*RoleResponse, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	permissions := make([]identity.Permission, 0, len(req.PermissionIDs))
	for _, permissionID := range req.PermissionIDs {
		permission, err := s.permissionRepo.FindByID(ctx, permissionID)
		if err != nil {
			return nil, err
		}
		permissions = append(permissions, *permission)
	}

	if err := s.roleRepo.ReplacePermissions(ctx, role, permissions); err != nil {
		return nil, err
	}
	role.Permissions = permissions
	role.MarkUpdated(actor)

	response := ToRoleResponse(role)
	return &response, nil
}

// Delete soft-deletes a role
func (s *RoleService) Delete(ctx context.Context, id uuid.UUID, actor shared.ActorRef) error {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !role.MarkDeleted(actor, time.Now()) {
		return nil
	}

	return s.roleRepo.Save(ctx, role)
}

// CreatePermission registers a resource/action permission
func (s *RoleService) CreatePermission(ctx context.Context, req CreatePermissionRequest) (*PermissionResponse, error) {
	permission, err := identity.NewPermission(req.Name, req.Resource, req.Action)
	if err != nil {
		return nil, err
	}

	if err := s.permissionRepo.Save(ctx, permission); err != nil {
		return nil, err
	}

	response := ToPermissionResponse(permission)
	return &response, nil
}

// ListPermissions returns the full permission catalog
func (s *RoleService) ListPermissions(ctx context.Context) ([]PermissionResponse, error) {
	permissions, err := s.permissionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPermissionResponses(permissions), nil
}
