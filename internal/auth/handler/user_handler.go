package handler

import (
	"errors"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/domain"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/dto"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/ledger"
	"github.com/souvikghost/Souvik-Tech-Agency/internal/auth/service"
	autherror "github.com/souvikghost/Souvik-Tech-Agency/internal/errors"
)

const defaultAccessLogLimit = 100

type UserHandler struct {
	accountService *service.AccountService
	ledgerService  *ledger.Service
	logger         *slog.Logger
}

func NewUserHandler(accountService *service.AccountService, ledgerService *ledger.Service, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
		logger:         logger,
	}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateAccountInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, email, password and role required",
		})
	}

	account, err := h.accountService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidRole) || errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return h.serverError(c, "create account failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created",
		"user":    service.Summarize(account),
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	filter := domain.AccountFilter{
		Role:    c.Query("role"),
		Removed: c.Query("removed") == "true",
	}

	accounts, err := h.accountService.List(c.Context(), filter)
	if err != nil {
		return h.serverError(c, "list accounts failed", err)
	}

	out := make([]dto.AccountOutput, 0, len(accounts))
	for i := range accounts {
		out = append(out, accountOutput(&accounts[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	account, err := h.accountService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, autherror.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return h.serverError(c, "get account failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(accountOutput(account))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	err := h.accountService.Remove(c.Context(), c.Params("id"))
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted"})
	case errors.Is(err, autherror.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrCannotRemoveAdmin):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrAccountAlreadyRemoved):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return h.serverError(c, "delete account failed", err)
	}
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	caller := accountFromContext(c)

	account, err := h.accountService.UpdateProfile(c.Context(), caller.ID, input)
	if err != nil {
		if errors.Is(err, autherror.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return h.serverError(c, "update profile failed", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated",
		"user":    accountOutput(account),
	})
}

func (h *UserHandler) AccessLog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultAccessLogLimit)

	entries, err := h.ledgerService.List(c.Context(), limit)
	if err != nil {
		return h.serverError(c, "list access log failed", err)
	}

	out := make([]dto.AccessEntryOutput, 0, len(entries))
	for i := range entries {
		out = append(out, accessEntryOutput(&entries[i]))
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *UserHandler) serverError(c *fiber.Ctx, msg string, err error) error {
	h.logger.Error(msg, "error", err)
	sentry.CaptureException(err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "server error",
	})
}

func accountOutput(a *domain.Account) dto.AccountOutput {
	return dto.AccountOutput{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		Company:   a.Company,
		Avatar:    a.Avatar,
		Removed:   a.Removed(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func accessEntryOutput(e *domain.AccessEntry) dto.AccessEntryOutput {
	return dto.AccessEntryOutput{
		IP:           e.IP,
		Country:      e.Geo.Country,
		CountryCode:  e.Geo.CountryCode,
		Region:       e.Geo.Region,
		City:         e.Geo.City,
		Timezone:     e.Geo.Timezone,
		Org:          e.Geo.Org,
		Postal:       e.Geo.Postal,
		Latitude:     e.Geo.Latitude,
		Longitude:    e.Geo.Longitude,
		Attempts:     e.Attempts,
		SuccessCount: e.SuccessCount,
		FailCount:    e.FailCount,
		FirstSeen:    e.FirstSeen,
		LastSeen:     e.LastSeen,
	}
}
