package domain

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain AccountRepository
//go:generate mockgen -destination=../../mocks/mock_ledger_repository.go -package=mocks github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain LedgerRepository
//go:generate mockgen -destination=../../mocks/mock_attempt_recorder.go -package=mocks github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain AttemptRecorder
//go:generate mockgen -destination=../../mocks/mock_geo_resolver.go -package=mocks github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain GeoResolver

import "context"

type AccountFilter struct {
	Role    string
	Removed bool
}

type ProfileUpdate struct {
	Name    string
	Company string
}

type AccountRepository interface {
	GetActiveByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	List(ctx context.Context, filter AccountFilter) ([]Account, error)
	MarkRemoved(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*Account, error)
}

type LedgerRepository interface {
	GetByIP(ctx context.Context, ip string) (*AccessEntry, error)
	Insert(ctx context.Context, entry *AccessEntry) error
	Increment(ctx context.Context, ip string, success bool) error
	List(ctx context.Context, limit int) ([]AccessEntry, error)
}

// AttemptRecorder is the advisory audit hook the login path calls. It has
// no error return: recording failures must never reach the caller.
type AttemptRecorder interface {
	RecordAttempt(ctx context.Context, ip string, success bool)
}

// GeoResolver maps an IP address to approximate location metadata. It
// fails soft: implementations return a fallback record instead of an error.
type GeoResolver interface {
	Resolve(ctx context.Context, ip string) GeoInfo
}
