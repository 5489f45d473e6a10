package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	autherror "github.com/souvikghost/Souvik-Tech-Agency/internal/errors"
	"github.com/souvikghost/Souvik-Tech-Agency/pkg/constant"
)

const accountContextKey = "account"

// RequireAuth verifies the session cookie and loads the caller's account
// into the request context. Tokens for removed accounts are rejected even
// if the signature and expiry still check out.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	token := c.Cookies(constant.SessionCookieName)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "no token provided",
		})
	}

	claims, err := h.tokenService.Verify(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrInvalidToken.Error(),
		})
	}

	account, err := h.authService.CurrentAccount(c.Context(), claims.AccountID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": autherror.ErrInvalidToken.Error(),
		})
	}

	c.Locals(accountContextKey, account)

	return c.Next()
}

// RequireRole gates a route to a single role. It assumes RequireAuth ran
// earlier in the chain.
func (h *AuthHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := accountFromContext(c)
		if account == nil || account.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "forbidden",
			})
		}
		return c.Next()
	}
}

func accountFromContext(c *fiber.Ctx) *domain.Account {
	account, _ := c.Locals(accountContextKey).(*domain.Account)
	return account
}
