package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
)

// DB is the slice of pgxpool.Pool the repositories need. pgxmock satisfies
// it too, which is what the tests rely on.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, name, email, password_hash, role, company, avatar, status, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
		&a.Company, &a.Avatar, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActiveByEmail returns the active account for email, or (nil, nil) when
// no such account exists. Removed accounts are filtered out here so the
// soft-delete check lives in exactly one place.
func (r *AccountRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE email = $1 AND status = 'active'
		LIMIT 1;
	`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE id = $1
		LIMIT 1;
	`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, name, email, password_hash, role, company, avatar, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, account.ID, account.Name, strings.ToLower(account.Email), account.PasswordHash,
		account.Role, account.Company, account.Avatar, account.Status,
		account.CreatedAt, account.UpdatedAt)

	return err
}

func (r *AccountRepository) List(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	status := domain.StatusActive
	if filter.Removed {
		status = domain.StatusRemoved
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM accounts
		WHERE status = $1 AND ($2 = '' OR role = $2)
		ORDER BY created_at DESC;
	`, accountColumns)

	rows, err := r.db.Query(ctx, query, status, filter.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

func (r *AccountRepository) MarkRemoved(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET status = 'removed', updated_at = now()
		WHERE id = $1
	`, id)
	return err
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.Account, error) {
	query := fmt.Sprintf(`
		UPDATE accounts
		SET name       = COALESCE(NULLIF($2, ''), name),
		    company    = COALESCE(NULLIF($3, ''), company),
		    updated_at = now()
		WHERE id = $1
		RETURNING %s;
	`, accountColumns)

	account, err := scanAccount(r.db.QueryRow(ctx, query, id, update.Name, update.Company))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return account, nil
}
