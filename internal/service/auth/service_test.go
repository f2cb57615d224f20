package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/mocks"
	"github.com/Kleberfca/timeline-project-system/pkg/config"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret-key",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
		ResetTTL:   30 * time.Minute,
		Issuer:     "test",
	}
}

func newTestService(userRepo *mocks.MockUserRepository, email *mocks.MockEmailService) *Service {
	if email == nil {
		email = &mocks.MockEmailService{}
	}
	svc := NewService(userRepo, &mocks.MockCache{}, email, testJWTConfig(), "http://localhost:5173", newTestLogger())
	return svc.(*Service)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	senha := "senha123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)

	mockUser := &domain.User{
		ID:              "user-123",
		Email:           "cliente@example.com",
		SenhaHash:       string(hash),
		Role:            domain.UserRoleCliente,
		EmailConfirmado: true,
	}

	mockRepo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email == "cliente@example.com" {
				return mockUser, nil
			}
			return nil, nil
		},
	}

	service := newTestService(mockRepo, nil)

	// Act
	session, user, err := service.Login(ctx, "cliente@example.com", senha)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session == nil || session.AccessToken == "" {
		t.Fatal("expected access token, got empty session")
	}
	if session.RefreshToken == "" {
		t.Error("expected refresh token, got empty string")
	}
	if user.ID != "user-123" {
		t.Errorf("expected user ID 'user-123', got '%s'", user.ID)
	}
}

func TestLogin_InvalidEmail(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockRepo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, nil // User not found
		},
	}
	service := newTestService(mockRepo, nil)

	// Act
	_, _, err := service.Login(ctx, "notfound@example.com", "senha")

	// Assert
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InvalidPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("senhacorreta"), bcrypt.DefaultCost)

	mockRepo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-123", Email: email, SenhaHash: string(hash), EmailConfirmado: true}, nil
		},
	}
	service := newTestService(mockRepo, nil)

	// Act
	_, _, err := service.Login(ctx, "cliente@example.com", "senhaerrada")

	// Assert
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_EmailNotConfirmed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	senha := "senha123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)

	mockRepo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-123", Email: email, SenhaHash: string(hash), EmailConfirmado: false}, nil
		},
	}
	service := newTestService(mockRepo, nil)

	// Act
	_, _, err := service.Login(ctx, "cliente@example.com", senha)

	// Assert
	if !errors.Is(err, domain.ErrEmailNotConfirmed) {
		t.Fatalf("expected ErrEmailNotConfirmed, got %v", err)
	}
}

func TestValidateToken_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUser := &domain.User{ID: "user-123", Email: "cliente@example.com", Role: domain.UserRoleCliente}

	mockRepo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if id == "user-123" {
				return mockUser, nil
			}
			return nil, nil
		},
	}
	service := newTestService(mockRepo, nil)

	token, err := service.signToken("user-123", "access", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	// Act
	user, err := service.ValidateToken(ctx, token)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != "user-123" {
		t.Errorf("expected user ID 'user-123', got '%s'", user.ID)
	}
}

func TestValidateToken_InvalidToken(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newTestService(&mocks.MockUserRepository{}, nil)

	// Act
	_, err := service.ValidateToken(ctx, "invalid-token")

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newTestService(&mocks.MockUserRepository{}, nil)

	token, _ := service.signToken("user-123", "refresh", time.Hour)

	// Act
	_, err := service.ValidateToken(ctx, token)

	// Assert
	if err == nil {
		t.Fatal("expected error for refresh token on access path, got nil")
	}
}

func TestGetSession_NoRepositoryAccess(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repoCalls := 0
	mockRepo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			repoCalls++
			return &domain.User{ID: id}, nil
		},
	}
	service := newTestService(mockRepo, nil)
	token, _ := service.signToken("user-123", "access", time.Hour)

	// Act
	session, err := service.GetSession(ctx, token)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.UserID != "user-123" {
		t.Errorf("expected user ID 'user-123', got '%s'", session.UserID)
	}
	if repoCalls != 0 {
		t.Errorf("expected zero repository calls, got %d", repoCalls)
	}
}

func TestRefreshToken_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if id == "user-123" {
				return &domain.User{ID: id, Email: "cliente@example.com"}, nil
			}
			return nil, nil
		},
	}
	service := newTestService(mockRepo, nil)
	refreshToken, _ := service.signToken("user-123", "refresh", time.Hour)

	// Act
	session, err := service.RefreshToken(ctx, refreshToken)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if session.AccessToken == "" {
		t.Error("expected new access token, got empty string")
	}
}

func TestRefreshToken_UserNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, nil // User not found
		},
	}
	service := newTestService(mockRepo, nil)
	refreshToken, _ := service.signToken("ghost", "refresh", time.Hour)

	// Act
	_, err := service.RefreshToken(ctx, refreshToken)

	// Assert
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	emailsSent := 0
	mockRepo := &mocks.MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, nil
		},
	}
	mockEmail := &mocks.MockEmailService{
		SendPasswordResetFunc: func(ctx context.Context, to, nome, resetLink string) error {
			emailsSent++
			return nil
		},
	}
	service := newTestService(mockRepo, mockEmail)

	// Act
	err := service.RequestPasswordReset(ctx, "ghost@example.com")

	// Assert
	if err != nil {
		t.Fatalf("expected no error for unknown email, got %v", err)
	}
	if emailsSent != 0 {
		t.Errorf("expected no email sent, got %d", emailsSent)
	}
}

func TestResetPassword_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("antiga"), bcrypt.DefaultCost)
	var updated *domain.User

	mockRepo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, SenhaHash: string(hash)}, nil
		},
		UpdateFunc: func(ctx context.Context, user *domain.User) error {
			updated = user
			return nil
		},
	}
	service := newTestService(mockRepo, nil)
	token, _ := service.signToken("user-123", "reset", time.Hour)

	// Act
	err := service.ResetPassword(ctx, token, "novasenha123")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated == nil {
		t.Fatal("expected user to be updated")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.SenhaHash), []byte("novasenha123")) != nil {
		t.Error("expected new password hash to match new password")
	}
}

func TestResetPassword_RejectsAccessToken(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newTestService(&mocks.MockUserRepository{}, nil)
	token, _ := service.signToken("user-123", "access", time.Hour)

	// Act
	err := service.ResetPassword(ctx, token, "novasenha123")

	// Assert
	if err == nil {
		t.Fatal("expected error for access token on reset path, got nil")
	}
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("atual"), bcrypt.DefaultCost)
	mockRepo := &mocks.MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, SenhaHash: string(hash)}, nil
		},
	}
	service := newTestService(mockRepo, nil)

	// Act
	err := service.ChangePassword(ctx, "user-123", "errada", "nova")

	// Assert
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
