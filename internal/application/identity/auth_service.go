package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/unionadmin/backend/internal/domain/identity"
	"github.com/unionadmin/backend/internal/domain/shared"
	"github.com/unionadmin/backend/internal/infrastructure/auth"
	"github.com/unionadmin/backend/internal/infrastructure/telemetry"
)

// AuthService handles login, token refresh and logout. One refresh token is
// live per user at a time; issuing a new pair supersedes the previous one.
type AuthService struct {
	userRepo     identity.UserRepository
	jwtService   *auth.JWTService
	refreshStore auth.RefreshTokenStore
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, refreshStore auth.RefreshTokenStore) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		refreshStore: refreshStore,
	}
}

// Login authenticates a member and issues a token pair. Lookup and password
// failures produce the same error so the response never reveals whether the
// email is registered.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "login")
	defer span.End()

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}
	if !user.CheckPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	return s.issueTokens(ctx, user)
}

// Refresh validates a refresh token and rotates the pair. Permissions are
// resolved from the user's current role, not from the old token.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "refresh")
	defer span.End()

	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, shared.NewDomainError("UNAUTHORIZED", "Refresh token is invalid or expired")
	}

	live, err := s.refreshStore.IsLive(ctx, claims.UserID, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Refresh token has been superseded or revoked")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Refresh token is invalid or expired")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account no longer exists")
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the user's live refresh token
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.refreshStore.Revoke(ctx, userID.String())
}

// Me returns the authenticated member's account
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// issueTokens generates a pair and registers the refresh JTI as the user's
// single live session
func (s *AuthService) issueTokens(ctx context.Context, user *identity.User) (*TokenResponse, error) {
	var permissions []string
	if user.Role != nil {
		permissions = user.Role.Claims()
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:      user.ID,
		Email:       user.Email,
		RoleID:      user.RoleID,
		Permissions: permissions,
	})
	if err != nil {
		return nil, err
	}

	// The refresh JTI is only available from the token itself
	refreshClaims, err := s.jwtService.ValidateRefreshToken(pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.refreshStore.Save(ctx, user.ID.String(), refreshClaims.ID, s.jwtService.GetRefreshTokenExpiration()); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  ToUserResponse(user),
	}, nil
}
