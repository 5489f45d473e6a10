package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souvikghost/Souvik-Tech-Agency/config"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/handler"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/ledger"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/service"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/mocks"
	"github.com/souvikghost/Souvik-Tech-Agency/pkg/constant"
)

type routesFixture struct {
	app        *fiber.App
	repo       *mocks.MockAccountRepository
	ledgerRepo *mocks.MockLedgerRepository
	tokens     *service.TokenService
}

func newRoutesFixture(t *testing.T, ctrl *gomock.Controller) *routesFixture {
	t.Helper()

	mockRepo := mocks.NewMockAccountRepository(ctrl)
	mockLedgerRepo := mocks.NewMockLedgerRepository(ctrl)
	mockRecorder := mocks.NewMockAttemptRecorder(ctrl)
	mockGeo := mocks.NewMockGeoResolver(ctrl)

	tokens := service.NewTokenService("test-secret", 24)
	authService := service.NewAuthService(mockRepo, tokens, mockRecorder)
	accountService := service.NewAccountService(mockRepo)
	ledgerService := ledger.NewService(mockLedgerRepo, mockGeo, discardLogger())

	cfg := &config.Config{Env: "development"}
	authHandler := handler.NewAuthHandler(authService, tokens, cfg, discardLogger())
	userHandler := handler.NewUserHandler(accountService, ledgerService, discardLogger())

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, userHandler)

	return &routesFixture{
		app:        app,
		repo:       mockRepo,
		ledgerRepo: mockLedgerRepo,
		tokens:     tokens,
	}
}

// sessionFor issues a real token for the account and primes the repository
// so RequireAuth can load it.
func (f *routesFixture) sessionFor(t *testing.T, account *domain.Account) *http.Cookie {
	t.Helper()
	token, _, err := f.tokens.Issue(account.ID, account.Role)
	require.NoError(t, err)
	f.repo.EXPECT().GetByID(gomock.Any(), account.ID).Return(account, nil).AnyTimes()
	return &http.Cookie{Name: constant.SessionCookieName, Value: token}
}

func TestRoutes_RequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPatch, "/api/users/profile"},
		{http.MethodPost, "/api/users/"},
		{http.MethodGet, "/api/users/"},
		{http.MethodGet, "/api/users/some-id"},
		{http.MethodDelete, "/api/users/some-id"},
		{http.MethodGet, "/api/admin/access-log"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equalf(t, fiber.StatusUnauthorized, resp.StatusCode,
			"%s %s should require a session", route.method, route.path)
	}
}

func TestRoutes_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	client := &domain.Account{
		ID:     "client-1",
		Email:  "client@example.com",
		Role:   constant.RoleClient,
		Status: domain.StatusActive,
	}
	cookie := f.sessionFor(t, client)

	adminOnly := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/users/"},
		{http.MethodGet, "/api/users/"},
		{http.MethodGet, "/api/users/some-id"},
		{http.MethodDelete, "/api/users/some-id"},
		{http.MethodGet, "/api/admin/access-log"},
	}

	for _, route := range adminOnly {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.AddCookie(cookie)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equalf(t, fiber.StatusForbidden, resp.StatusCode,
			"%s %s should be admin only", route.method, route.path)
	}
}

func TestRoutes_AdminAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	admin := &domain.Account{
		ID:     "admin-1",
		Email:  "admin@example.com",
		Role:   constant.RoleAdmin,
		Status: domain.StatusActive,
	}
	cookie := f.sessionFor(t, admin)

	f.repo.EXPECT().List(gomock.Any(), domain.AccountFilter{}).Return(nil, nil)
	f.ledgerRepo.EXPECT().List(gomock.Any(), 100).Return(nil, nil)

	for _, path := range []string{"/api/users/", "/api/admin/access-log"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equalf(t, fiber.StatusOK, resp.StatusCode, "GET %s as admin", path)
	}
}

func TestRoutes_ProfileAccessibleToAnyRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newRoutesFixture(t, ctrl)

	client := &domain.Account{
		ID:     "client-1",
		Email:  "client@example.com",
		Role:   constant.RoleClient,
		Status: domain.StatusActive,
	}
	cookie := f.sessionFor(t, client)

	updated := &domain.Account{ID: client.ID, Name: "Renamed"}
	f.repo.EXPECT().UpdateProfile(gomock.Any(), client.ID, domain.ProfileUpdate{Name: "Renamed"}).
		Return(updated, nil)

	req := jsonRequest(t, http.MethodPatch, "/api/users/profile", fiber.Map{"name": "Renamed"})
	req.AddCookie(cookie)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
