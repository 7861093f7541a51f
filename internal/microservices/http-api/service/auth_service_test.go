package service

import (
	"errors"
	"testing"
	"time"

	"bloghub/internal/microservices/http-api/dto"
	"bloghub/internal/microservices/http-api/models"
	"bloghub/internal/middleware/auth"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-that-is-at-least-32-chars"

func newTestAuthService() (AuthService, *MockUserRepository, *MockRevokedTokenRepository, *auth.TokenManager) {
	userRepo := new(MockUserRepository)
	revokedRepo := new(MockRevokedTokenRepository)
	tokens := auth.NewTokenManager(testSecret, 7*24*time.Hour)
	return NewAuthService(userRepo, revokedRepo, tokens, zap.NewNop()), userRepo, revokedRepo, tokens
}

func TestSignUp_Success(t *testing.T) {
	svc, userRepo, _, tokens := newTestAuthService()

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = "user-1"
		}).
		Return(nil)

	result, err := svc.SignUp(ctx(), dto.SignUpRequest{Email: "demo@y.com", Password: "demodemo", Name: "Demo"})

	require.NoError(t, err)
	assert.Equal(t, "demo@y.com", result.User.Email)
	assert.Equal(t, "Demo", result.User.Name)
	assert.NotEqual(t, "demodemo", result.User.Password)
	assert.NoError(t, auth.VerifyPassword(result.User.Password, "demodemo"))

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	userRepo.AssertExpectations(t)
}

func TestSignUp_EmailTaken(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()

	dup := &pgconn.PgError{Code: "23505", Detail: "Key (email)=(demo@y.com) already exists.", ConstraintName: "idx_users_email"}
	userRepo.On("Create", mock.Anything, mock.Anything).Return(dup)

	result, err := svc.SignUp(ctx(), dto.SignUpRequest{Email: "demo@y.com", Password: "demodemo", Name: "Demo"})

	assert.Nil(t, result)
	svcErr := HandleDataAccessError(err)
	assert.Equal(t, dto.CodeAlreadyExists, svcErr.Code)
	assert.Equal(t, "email already exists.", svcErr.Message)
}

func TestSignUp_InvalidInput(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()

	tests := []dto.SignUpRequest{
		{Email: "not-an-email", Password: "demodemo", Name: "Demo"},
		{Email: "demo@y.com", Password: "short", Name: "Demo"},
		{Email: "demo@y.com", Password: "demodemo", Name: "   "},
	}
	for _, req := range tests {
		_, err := svc.SignUp(ctx(), req)
		require.Error(t, err)
		assert.Equal(t, dto.CodeBadUserInput, HandleDataAccessError(err).Code)
	}
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignUpThenSignIn(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()

	var stored *models.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.User)
			stored.ID = "user-1"
		}).
		Return(nil)

	_, err := svc.SignUp(ctx(), dto.SignUpRequest{Email: "demo@y.com", Password: "demodemo", Name: "Demo"})
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "demo@y.com").Return(stored, nil)

	result, err := svc.SignIn(ctx(), dto.SignInRequest{Email: "demo@y.com", Password: "demodemo"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "user-1", result.User.ID)

	result, err = svc.SignIn(ctx(), dto.SignInRequest{Email: "demo@y.com", Password: "wrong-password"})
	assert.Nil(t, result)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()
	userRepo.On("FindByEmail", mock.Anything, "nobody@y.com").Return(nil, gorm.ErrRecordNotFound)

	result, err := svc.SignIn(ctx(), dto.SignInRequest{Email: "nobody@y.com", Password: "demodemo"})

	assert.Nil(t, result)
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Equal(t, dto.CodeUnauthenticated, HandleDataAccessError(err).Code)
}

func TestSignIn_RepositoryError(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()
	userRepo.On("FindByEmail", mock.Anything, "demo@y.com").Return(nil, errors.New("connection refused"))

	_, err := svc.SignIn(ctx(), dto.SignInRequest{Email: "demo@y.com", Password: "demodemo"})

	assert.Equal(t, dto.CodeInternalServerError, HandleDataAccessError(err).Code)
}

func TestSignOut_RevokesToken(t *testing.T) {
	svc, _, revokedRepo, tokens := newTestAuthService()
	token, claims, err := tokens.Issue("user-1")
	require.NoError(t, err)

	revokedRepo.On("Revoke", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 6*24*time.Hour && ttl <= 7*24*time.Hour
	})).Return(nil)

	assert.NoError(t, svc.SignOut(ctx(), token))
	revokedRepo.AssertExpectations(t)
}

func TestSignOut_IgnoresInvalidToken(t *testing.T) {
	svc, _, revokedRepo, _ := newTestAuthService()

	assert.NoError(t, svc.SignOut(ctx(), ""))
	assert.NoError(t, svc.SignOut(ctx(), "garbage"))
	revokedRepo.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticate(t *testing.T) {
	svc, _, revokedRepo, tokens := newTestAuthService()
	token, claims, err := tokens.Issue("user-1")
	require.NoError(t, err)

	revokedRepo.On("IsRevoked", mock.Anything, claims.ID).Return(false, nil).Once()
	userID, err := svc.Authenticate(ctx(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	revokedRepo.On("IsRevoked", mock.Anything, claims.ID).Return(true, nil).Once()
	_, err = svc.Authenticate(ctx(), token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Authenticate(ctx(), "garbage")
	assert.Error(t, err)
}
