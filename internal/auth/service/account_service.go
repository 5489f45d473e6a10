package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/dto"
	autherror "github.com/souvikghost/Souvik-Tech-Agency/internal/errors"
	"github.com/souvikghost/Souvik-Tech-Agency/pkg/constant"
)

// AccountService covers the admin account lifecycle: create, list, soft
// delete, and self-service profile edits. Accounts are never hard-deleted.
type AccountService struct {
	accounts domain.AccountRepository
}

func NewAccountService(accounts domain.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) Create(ctx context.Context, input dto.CreateAccountInput) (*domain.Account, error) {
	if input.Role != constant.RoleEmployee && input.Role != constant.RoleClient {
		return nil, autherror.ErrInvalidRole
	}

	email := strings.ToLower(input.Email)
	existing, err := s.accounts.GetActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	account := &domain.Account{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
		Company:      input.Company,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *AccountService) List(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	return s.accounts.List(ctx, filter)
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}
	return account, nil
}

// Remove flags the account as removed. Admin accounts cannot be removed,
// and removing twice is rejected.
func (s *AccountService) Remove(ctx context.Context, id string) error {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrAccountNotFound
	}
	if account.Role == constant.RoleAdmin {
		return autherror.ErrCannotRemoveAdmin
	}
	if account.Removed() {
		return autherror.ErrAccountAlreadyRemoved
	}

	return s.accounts.MarkRemoved(ctx, id)
}

func (s *AccountService) UpdateProfile(ctx context.Context, id string, input dto.UpdateProfileInput) (*domain.Account, error) {
	account, err := s.accounts.UpdateProfile(ctx, id, domain.ProfileUpdate{
		Name:    input.Name,
		Company: input.Company,
	})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrAccountNotFound
	}
	return account, nil
}
