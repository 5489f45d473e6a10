package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/dto"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/service"
	autherror "github.com/souvikghost/Souvik-Tech-Agency/internal/errors"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/mocks"
	"github.com/souvikghost/Souvik-Tech-Agency/pkg/constant"
)

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockLedger := mocks.NewMockAttemptRecorder(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockLedger)

	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	account := &domain.Account{
		ID:           "account-id",
		Name:         "Test Person",
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleClient,
		Status:       domain.StatusActive,
	}

	input := dto.LoginInput{
		Email:     account.Email,
		Password:  password,
		IPAddress: "203.0.113.7",
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	mockRepo.EXPECT().GetActiveByEmail(gomock.Any(), input.Email).Return(account, nil)
	mockLedger.EXPECT().RecordAttempt(gomock.Any(), input.IPAddress, true)
	mockTokens.EXPECT().Issue(account.ID, account.Role).Return("signed-token", expiresAt, nil)

	session, err := s.Login(context.Background(), input)

	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, expiresAt, session.ExpiresAt)
	assert.Equal(t, account.ID, session.Account.ID)
	assert.Equal(t, account.Name, session.Account.Name)
	assert.Equal(t, account.Role, session.Account.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockLedger := mocks.NewMockAttemptRecorder(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockLedger)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	account := &domain.Account{
		ID:           "account-id",
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
		Status:       domain.StatusActive,
	}

	input := dto.LoginInput{
		Email:     account.Email,
		Password:  "wrong-password",
		IPAddress: "203.0.113.7",
	}

	mockRepo.EXPECT().GetActiveByEmail(gomock.Any(), input.Email).Return(account, nil)
	mockLedger.EXPECT().RecordAttempt(gomock.Any(), input.IPAddress, false)

	session, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, session)
}

// A removed account is filtered out by the repository's active-only lookup,
// so it must be indistinguishable from an unknown email.
func TestAuthService_Login_UnknownOrRemovedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockLedger := mocks.NewMockAttemptRecorder(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockLedger)

	input := dto.LoginInput{
		Email:     "gone@example.com",
		Password:  "whatever",
		IPAddress: "203.0.113.7",
	}

	mockRepo.EXPECT().GetActiveByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockLedger.EXPECT().RecordAttempt(gomock.Any(), input.IPAddress, false)

	session, err := s.Login(context.Background(), input)

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestAuthService_Login_EmailIsCaseNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockLedger := mocks.NewMockAttemptRecorder(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockLedger)

	input := dto.LoginInput{
		Email:     "Test@Example.COM",
		Password:  "whatever",
		IPAddress: "203.0.113.7",
	}

	mockRepo.EXPECT().GetActiveByEmail(gomock.Any(), "test@example.com").Return(nil, nil)
	mockLedger.EXPECT().RecordAttempt(gomock.Any(), input.IPAddress, false)

	_, err := s.Login(context.Background(), input)
	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

// A storage failure is not a verification outcome, so nothing is ledgered
// and the error propagates for the handler to map to a 500.
func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockLedger := mocks.NewMockAttemptRecorder(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockLedger)

	expectedError := errors.New("database error")
	input := dto.LoginInput{Email: "test@example.com", Password: "password", IPAddress: "203.0.113.7"}

	mockRepo.EXPECT().GetActiveByEmail(gomock.Any(), input.Email).Return(nil, expectedError)

	session, err := s.Login(context.Background(), input)

	assert.Equal(t, expectedError, err)
	assert.Nil(t, session)
}

func TestAuthService_Login_TokenIssueError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockLedger := mocks.NewMockAttemptRecorder(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockLedger)

	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	account := &domain.Account{
		ID:           "account-id",
		Email:        "test@example.com",
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleEmployee,
		Status:       domain.StatusActive,
	}

	input := dto.LoginInput{Email: account.Email, Password: password, IPAddress: "203.0.113.7"}
	expectedError := errors.New("signing error")

	mockRepo.EXPECT().GetActiveByEmail(gomock.Any(), input.Email).Return(account, nil)
	// The successful verification is ledgered even though issuing fails after.
	mockLedger.EXPECT().RecordAttempt(gomock.Any(), input.IPAddress, true)
	mockTokens.EXPECT().Issue(account.ID, account.Role).Return("", time.Time{}, expectedError)

	session, err := s.Login(context.Background(), input)

	assert.Equal(t, expectedError, err)
	assert.Nil(t, session)
}

func TestAuthService_CurrentAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	mockLedger := mocks.NewMockAttemptRecorder(ctrl)

	s := service.NewAuthService(mockRepo, mockTokens, mockLedger)
	ctx := context.Background()

	t.Run("active account", func(t *testing.T) {
		account := &domain.Account{ID: "id-1", Status: domain.StatusActive}
		mockRepo.EXPECT().GetByID(gomock.Any(), "id-1").Return(account, nil)

		got, err := s.CurrentAccount(ctx, "id-1")
		assert.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("removed account invalidates the session", func(t *testing.T) {
		account := &domain.Account{ID: "id-2", Status: domain.StatusRemoved}
		mockRepo.EXPECT().GetByID(gomock.Any(), "id-2").Return(account, nil)

		got, err := s.CurrentAccount(ctx, "id-2")
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		assert.Nil(t, got)
	})

	t.Run("unknown account", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "id-3").Return(nil, nil)

		got, err := s.CurrentAccount(ctx, "id-3")
		assert.ErrorIs(t, err, autherror.ErrInvalidToken)
		assert.Nil(t, got)
	})

	t.Run("repository error", func(t *testing.T) {
		expectedError := errors.New("database error")
		mockRepo.EXPECT().GetByID(gomock.Any(), "id-4").Return(nil, expectedError)

		got, err := s.CurrentAccount(ctx, "id-4")
		assert.Equal(t, expectedError, err)
		assert.Nil(t, got)
	})
}
