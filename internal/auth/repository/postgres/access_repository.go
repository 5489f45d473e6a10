package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
)

type AccessLogRepository struct {
	db DB
}

func NewAccessLogRepository(db DB) *AccessLogRepository {
	return &AccessLogRepository{db: db}
}

const accessColumns = `ip, country, country_code, region, city, timezone, org, postal,
		latitude, longitude, attempts, success_count, fail_count, first_seen, last_seen`

func scanAccessEntry(row pgx.Row) (*domain.AccessEntry, error) {
	var e domain.AccessEntry
	err := row.Scan(&e.IP, &e.Geo.Country, &e.Geo.CountryCode, &e.Geo.Region,
		&e.Geo.City, &e.Geo.Timezone, &e.Geo.Org, &e.Geo.Postal,
		&e.Geo.Latitude, &e.Geo.Longitude,
		&e.Attempts, &e.SuccessCount, &e.FailCount, &e.FirstSeen, &e.LastSeen)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *AccessLogRepository) GetByIP(ctx context.Context, ip string) (*domain.AccessEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM access_log
		WHERE ip = $1
		LIMIT 1;
	`, accessColumns)

	entry, err := scanAccessEntry(r.db.QueryRow(ctx, query, ip))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get access entry: %w", err)
	}

	return entry, nil
}

// Insert creates the first-sighting row for entry.IP. The table's primary
// key on ip is the authoritative uniqueness guard: if another request
// created the row first, this insert falls through to a counter increment
// and the original geo snapshot is left untouched.
func (r *AccessLogRepository) Insert(ctx context.Context, entry *domain.AccessEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO access_log (
			ip, country, country_code, region, city, timezone, org, postal,
			latitude, longitude, attempts, success_count, fail_count, first_seen, last_seen
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (ip)
		DO UPDATE SET
			attempts      = access_log.attempts + 1,
			success_count = access_log.success_count + EXCLUDED.success_count,
			fail_count    = access_log.fail_count + EXCLUDED.fail_count,
			last_seen     = EXCLUDED.last_seen
	`, entry.IP, entry.Geo.Country, entry.Geo.CountryCode, entry.Geo.Region,
		entry.Geo.City, entry.Geo.Timezone, entry.Geo.Org, entry.Geo.Postal,
		entry.Geo.Latitude, entry.Geo.Longitude,
		entry.Attempts, entry.SuccessCount, entry.FailCount, entry.FirstSeen, entry.LastSeen)
	return err
}

func (r *AccessLogRepository) Increment(ctx context.Context, ip string, success bool) error {
	successInc, failInc := 0, 1
	if success {
		successInc, failInc = 1, 0
	}

	_, err := r.db.Exec(ctx, `
		UPDATE access_log
		SET attempts      = attempts + 1,
		    success_count = success_count + $2,
		    fail_count    = fail_count + $3,
		    last_seen     = now()
		WHERE ip = $1
	`, ip, successInc, failInc)
	return err
}

func (r *AccessLogRepository) List(ctx context.Context, limit int) ([]domain.AccessEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM access_log
		ORDER BY last_seen DESC
		LIMIT $1;
	`, accessColumns)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list access entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AccessEntry
	for rows.Next() {
		entry, err := scanAccessEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}
