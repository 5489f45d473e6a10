package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	repo "github.com/souvikghost/Souvik-Tech-Agency/internal/auth/repository/postgres"
)

var accessColumns = []string{
	"ip", "country", "country_code", "region", "city", "timezone", "org", "postal",
	"latitude", "longitude", "attempts", "success_count", "fail_count", "first_seen", "last_seen",
}

func TestAccessGetByIP(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccessLogRepository(mock)
	ctx := context.Background()
	ip := "203.0.113.7"

	t.Run("success", func(t *testing.T) {
		lat, lon := 52.374, 4.8897
		rows := pgxmock.NewRows(accessColumns).
			AddRow(ip, "Netherlands", "NL", "North Holland", "Amsterdam", "Europe/Amsterdam",
				"Example Hosting BV", "1012", &lat, &lon, 3, 1, 2, time.Now(), time.Now())

		mock.ExpectQuery("SELECT ip, country").
			WithArgs(ip).
			WillReturnRows(rows)

		entry, err := r.GetByIP(ctx, ip)
		require.NoError(t, err)
		assert.Equal(t, ip, entry.IP)
		assert.Equal(t, "Netherlands", entry.Geo.Country)
		assert.Equal(t, 3, entry.Attempts)
		assert.Equal(t, 1, entry.SuccessCount)
		assert.Equal(t, 2, entry.FailCount)
		require.NotNil(t, entry.Geo.Latitude)
		assert.InDelta(t, 52.374, *entry.Geo.Latitude, 0.001)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT ip, country").
			WithArgs(ip).
			WillReturnError(pgx.ErrNoRows)

		entry, err := r.GetByIP(ctx, ip)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT ip, country").
			WithArgs(ip).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByIP(ctx, ip)
		assert.Error(t, err)
	})
}

func TestAccessInsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccessLogRepository(mock)
	now := time.Now()

	entry := &domain.AccessEntry{
		IP: "203.0.113.7",
		Geo: domain.GeoInfo{
			Country: "Netherlands", CountryCode: "NL", Region: "North Holland",
			City: "Amsterdam", Timezone: "Europe/Amsterdam", Org: "Example Hosting BV",
			Postal: "1012",
		},
		Attempts:  1,
		FailCount: 1,
		FirstSeen: now,
		LastSeen:  now,
	}

	mock.ExpectExec("INSERT INTO access_log").
		WithArgs(entry.IP, "Netherlands", "NL", "North Holland", "Amsterdam",
			"Europe/Amsterdam", "Example Hosting BV", "1012",
			entry.Geo.Latitude, entry.Geo.Longitude,
			1, 0, 1, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.Insert(context.Background(), entry))
}

func TestAccessIncrement(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccessLogRepository(mock)
	ctx := context.Background()
	ip := "203.0.113.7"

	t.Run("success attempt bumps success_count", func(t *testing.T) {
		mock.ExpectExec("UPDATE access_log").
			WithArgs(ip, 1, 0).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Increment(ctx, ip, true))
	})

	t.Run("failed attempt bumps fail_count", func(t *testing.T) {
		mock.ExpectExec("UPDATE access_log").
			WithArgs(ip, 0, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Increment(ctx, ip, false))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE access_log").
			WithArgs(ip, 1, 0).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Increment(ctx, ip, true))
	})
}

func TestAccessList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccessLogRepository(mock)

	rows := pgxmock.NewRows(accessColumns).
		AddRow("203.0.113.7", "Netherlands", "NL", "North Holland", "Amsterdam",
			"Europe/Amsterdam", "Example Hosting BV", "1012",
			nil, nil, 2, 1, 1, time.Now(), time.Now())

	mock.ExpectQuery("SELECT ip, country").
		WithArgs(100).
		WillReturnRows(rows)

	entries, err := r.List(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "203.0.113.7", entries[0].IP)
	assert.Nil(t, entries[0].Geo.Latitude)
}
