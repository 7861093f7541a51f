package service

import (
	"context"
	"strings"
	"time"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/microservices/http-api/repository"
	"bloghub/internal/middleware/auth"

	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResult, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResult, error)
	// SignOut revokes token for the rest of its lifetime. Unparseable tokens
	// are ignored.
	SignOut(ctx context.Context, token string) error
	// Authenticate returns the user id a valid, unrevoked token was issued for.
	Authenticate(ctx context.Context, token string) (string, error)
	TokenTTL() time.Duration
}

type authService struct {
	userRepo    repository.UserRepository
	revokedRepo repository.RevokedTokenRepository
	tokens      *auth.TokenManager
	logger      *zap.Logger
}

func NewAuthService(
	userRepo repository.UserRepository,
	revokedRepo repository.RevokedTokenRepository,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		revokedRepo: revokedRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

// SignUp registers a new user and issues a session token.
func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResult, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: hashedPassword,
	}

	// a taken email surfaces as a unique violation on users.email
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// SignIn authenticates a user by email and password.
func (s *authService) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if IsNotFound(err) {
			// User not found we use dummy compare to mitigate timing attacks (always take same time)
			auth.BurnCompare(req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) issue(user *models.User) (*dto.AuthResult, error) {
	token, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{Token: token, User: user}, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revokedRepo.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}
	s.logger.Debug("token revoked", zap.String("user_id", claims.UserID), zap.String("jti", claims.ID))
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return "", err
	}

	revoked, err := s.revokedRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Warn("revoked token lookup failed", zap.Error(err))
		return "", err
	}
	if revoked {
		return "", auth.ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}
