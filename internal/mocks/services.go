package mocks

import (
	"context"
	"io"
	"time"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	LoginFunc                func(ctx context.Context, email, senha string) (*domain.Session, *domain.User, error)
	RefreshTokenFunc         func(ctx context.Context, refreshToken string) (*domain.Session, error)
	ValidateTokenFunc        func(ctx context.Context, token string) (*domain.User, error)
	GetSessionFunc           func(ctx context.Context, token string) (*domain.Session, error)
	SignOutFunc              func(ctx context.Context, token string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ResetPasswordFunc        func(ctx context.Context, token, novaSenha string) error
	ChangePasswordFunc       func(ctx context.Context, userID, senhaAtual, novaSenha string) error
}

func (m *MockAuthService) Login(ctx context.Context, email, senha string) (*domain.Session, *domain.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, senha)
	}
	return nil, nil, nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return nil, nil
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAuthService) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAuthService) SignOut(ctx context.Context, token string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, token)
	}
	return nil
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, novaSenha string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, novaSenha)
	}
	return nil
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, senhaAtual, novaSenha string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, senhaAtual, novaSenha)
	}
	return nil
}

// MockEmailService is a mock implementation of EmailService
type MockEmailService struct {
	SendPasswordResetFunc func(ctx context.Context, to, nome, resetLink string) error
	SendWelcomeFunc       func(ctx context.Context, to, nome string) error
}

func (m *MockEmailService) SendPasswordReset(ctx context.Context, to, nome, resetLink string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(ctx, to, nome, resetLink)
	}
	return nil
}

func (m *MockEmailService) SendWelcome(ctx context.Context, to, nome string) error {
	if m.SendWelcomeFunc != nil {
		return m.SendWelcomeFunc(ctx, to, nome)
	}
	return nil
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	PublishTimelineEventFunc func(ctx context.Context, event *domain.TimelineEvent) error
	PublishArquivoEventFunc  func(ctx context.Context, event *domain.ArquivoEvent) error
}

func (m *MockEventPublisher) PublishTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error {
	if m.PublishTimelineEventFunc != nil {
		return m.PublishTimelineEventFunc(ctx, event)
	}
	return nil
}

func (m *MockEventPublisher) PublishArquivoEvent(ctx context.Context, event *domain.ArquivoEvent) error {
	if m.PublishArquivoEventFunc != nil {
		return m.PublishArquivoEventFunc(ctx, event)
	}
	return nil
}

// MockObjectStore is a mock implementation of ObjectStore
type MockObjectStore struct {
	PutFunc       func(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error
	GetFunc       func(ctx context.Context, bucket, path string) (io.ReadCloser, error)
	DeleteFunc    func(ctx context.Context, bucket, path string) error
	SignedURLFunc func(bucket, path string, expires time.Duration) (string, error)
	PublicURLFunc func(bucket, path string) string
}

func (m *MockObjectStore) Put(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, bucket, path, r, size, contentType)
	}
	return nil
}

func (m *MockObjectStore) Get(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, bucket, path)
	}
	return nil, nil
}

func (m *MockObjectStore) Delete(ctx context.Context, bucket, path string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, bucket, path)
	}
	return nil
}

func (m *MockObjectStore) SignedURL(bucket, path string, expires time.Duration) (string, error) {
	if m.SignedURLFunc != nil {
		return m.SignedURLFunc(bucket, path, expires)
	}
	return "", nil
}

func (m *MockObjectStore) PublicURL(bucket, path string) string {
	if m.PublicURLFunc != nil {
		return m.PublicURLFunc(bucket, path)
	}
	return ""
}
