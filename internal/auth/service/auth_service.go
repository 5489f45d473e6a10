package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/dto"
	autherror "github.com/souvikghost/Souvik-Tech-Agency/internal/errors"
)

// AuthService runs the login flow: verify credentials, record the outcome
// in the access ledger, and mint a session on success. The ledger write is
// synchronous but advisory; it cannot change the login outcome.
type AuthService struct {
	accounts domain.AccountRepository
	tokens   TokenGenerator
	ledger   domain.AttemptRecorder
}

func NewAuthService(accounts domain.AccountRepository, tokens TokenGenerator, ledger domain.AttemptRecorder) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
		ledger:   ledger,
	}
}

type Session struct {
	Account   dto.AccountSummary
	Token     string
	ExpiresAt time.Time
}

// Login verifies the submitted credentials and records the attempt against
// input.IPAddress. Unknown email, removed account and wrong password all
// collapse to ErrInvalidCredentials so a caller cannot probe which one it was.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*Session, error) {
	account, err := s.accounts.GetActiveByEmail(ctx, strings.ToLower(input.Email))
	if err != nil {
		return nil, err
	}

	if account == nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		s.ledger.RecordAttempt(ctx, input.IPAddress, false)
		return nil, autherror.ErrInvalidCredentials
	}

	s.ledger.RecordAttempt(ctx, input.IPAddress, true)

	token, expiresAt, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	return &Session{
		Account:   Summarize(account),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// CurrentAccount resolves the session claims back to a live account. A
// removed account invalidates any token still circulating for it.
func (s *AuthService) CurrentAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Removed() {
		return nil, autherror.ErrInvalidToken
	}
	return account, nil
}

func Summarize(account *domain.Account) dto.AccountSummary {
	return dto.AccountSummary{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}
}
