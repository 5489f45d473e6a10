package handler

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/souvikghost/Souvik-Tech-Agency/config"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/dto"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/service"
	autherror "github.com/souvikghost/Souvik-Tech-Agency/internal/errors"
	"github.com/souvikghost/Souvik-Tech-Agency/pkg/constant"
)

type AuthHandler struct {
	authService  *service.AuthService
	tokenService service.TokenGenerator
	cfg          *config.Config
	logger       *slog.Logger
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenGenerator, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	// Missing fields short-circuit before IP extraction: no ledger write.
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password required",
		})
	}

	input.IPAddress = clientIP(c)

	session, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrInvalidCredentials.Error(),
			})
		}

		h.logger.Error("login failed unexpectedly", "error", err)
		sentry.CaptureException(err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "server error",
		})
	}

	h.setSessionCookie(c, session.Token, session.ExpiresAt)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"user":    session.Account,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account := accountFromContext(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": service.Summarize(account),
	})
}

// clientIP prefers the proxy-set headers, then the socket address. A
// request with no resolvable address is ledgered under "unknown".
func clientIP(c *fiber.Ctx) string {
	if ip := c.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return constant.UnknownValue
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.Production(),
		SameSite: h.cookieSameSite(),
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cfg.Production(),
		SameSite: h.cookieSameSite(),
		Path:     "/",
	})
}

// Cross-site cookies are only allowed in production, where the frontend is
// served from a different origin over HTTPS.
func (h *AuthHandler) cookieSameSite() string {
	if h.cfg.Production() {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}
