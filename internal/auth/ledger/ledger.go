package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
)

// Service maintains the per-IP access ledger. Recording is advisory: every
// failure is logged here and absorbed, so the login path's outcome never
// depends on a ledger or geo problem.
type Service struct {
	repo   domain.LedgerRepository
	geo    domain.GeoResolver
	logger *slog.Logger
}

func NewService(repo domain.LedgerRepository, geo domain.GeoResolver, logger *slog.Logger) *Service {
	return &Service{repo: repo, geo: geo, logger: logger}
}

// RecordAttempt upserts the ledger entry for ip. The geo snapshot is taken
// once, on first sighting; later attempts only touch the counters and
// last-seen timestamp.
func (s *Service) RecordAttempt(ctx context.Context, ip string, success bool) {
	existing, err := s.repo.GetByIP(ctx, ip)
	if err != nil {
		s.logger.Error("access ledger read failed", "ip", ip, "error", err)
		return
	}

	if existing != nil {
		if err := s.repo.Increment(ctx, ip, success); err != nil {
			s.logger.Error("access ledger increment failed", "ip", ip, "error", err)
		}
		return
	}

	now := time.Now()
	entry := &domain.AccessEntry{
		IP:        ip,
		Geo:       s.geo.Resolve(ctx, ip),
		Attempts:  1,
		FirstSeen: now,
		LastSeen:  now,
	}
	if success {
		entry.SuccessCount = 1
	} else {
		entry.FailCount = 1
	}

	// The insert degrades to an increment on conflict, so a concurrent
	// first sighting of the same IP cannot produce a duplicate row.
	if err := s.repo.Insert(ctx, entry); err != nil {
		s.logger.Error("access ledger insert failed", "ip", ip, "error", err)
	}
}

// List returns recent ledger entries for the admin view, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.AccessEntry, error) {
	return s.repo.List(ctx, limit)
}
