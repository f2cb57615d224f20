package ports

import (
	"context"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
)

// AuthService autentica usuários e emite tokens
type AuthService interface {
	Login(ctx context.Context, email, senha string) (*domain.Session, *domain.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
	// GetSession valida o token localmente sem consultar o banco.
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, novaSenha string) error
	ChangePassword(ctx context.Context, userID, senhaAtual, novaSenha string) error
}

// EmailService envia emails transacionais
type EmailService interface {
	SendPasswordReset(ctx context.Context, to, nome, resetLink string) error
	SendWelcome(ctx context.Context, to, nome string) error
}

// EventPublisher publica eventos de mudança para o feed em tempo real
type EventPublisher interface {
	PublishTimelineEvent(ctx context.Context, event *domain.TimelineEvent) error
	PublishArquivoEvent(ctx context.Context, event *domain.ArquivoEvent) error
}
