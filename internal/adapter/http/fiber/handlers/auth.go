package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/adapter/http/fiber/middleware"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
)

type AuthHandler struct {
	service  ports.AuthService
	userRepo ports.UserRepository
	log      *zap.Logger
}

func NewAuthHandler(service ports.AuthService, userRepo ports.UserRepository, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		userRepo: userRepo,
		log:      log,
	}
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email e senha são obrigatórios"})
	}

	session, user, err := h.service.Login(c.Context(), req.Email, req.Senha)
	if err != nil {
		h.log.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		return err
	}

	return c.JSON(fiber.Map{
		"session": session,
		"user":    user,
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	session, err := h.service.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired refresh token"})
	}
	return c.JSON(fiber.Map{"session": session})
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword always answers 200 so the endpoint does not leak which
// emails exist.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email é obrigatório"})
	}

	if err := h.service.RequestPasswordReset(c.Context(), req.Email); err != nil {
		h.log.Error("Failed to request password reset", zap.Error(err))
	}
	return c.JSON(fiber.Map{
		"message": "Se o email existir, um link de redefinição foi enviado",
	})
}

type ResetPasswordRequest struct {
	Token     string `json:"token"`
	NovaSenha string `json:"nova_senha"`
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Token == "" || req.NovaSenha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token e nova senha são obrigatórios"})
	}

	if err := h.service.ResetPassword(c.Context(), req.Token, req.NovaSenha); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired reset token"})
	}
	return c.JSON(fiber.Map{"message": "Senha redefinida com sucesso"})
}

type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual"`
	NovaSenha  string `json:"nova_senha"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID, _ := c.Locals("user_id").(string)
	if err := h.service.ChangePassword(c.Context(), userID, req.SenhaAtual, req.NovaSenha); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Senha alterada com sucesso"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	return c.JSON(user)
}

type UpdatePerfilRequest struct {
	Nome *string `json:"nome,omitempty"`
}

func (h *AuthHandler) UpdatePerfil(c *fiber.Ctx) error {
	var req UpdatePerfilRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user := middleware.UserFromContext(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	if req.Nome != nil {
		user.Nome = *req.Nome
	}
	user.UpdatedAt = time.Now()

	if err := h.userRepo.Update(c.Context(), user); err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if err := h.service.SignOut(c.Context(), token); err != nil {
		h.log.Warn("Sign out failed", zap.Error(err))
	}
	return c.JSON(fiber.Map{"message": "Sessão encerrada"})
}
