package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/ports"
	"github.com/Kleberfca/timeline-project-system/pkg/config"
)

// Provider defines the interface for email providers
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// Service implements the EmailService interface
type Service struct {
	provider  Provider
	fromName  string
	templates map[string]*template.Template
	log       *zap.Logger
}

func NewService(cfg config.EmailConfig, log *zap.Logger) (ports.EmailService, error) {
	s := &Service{
		fromName:  cfg.FromName,
		templates: make(map[string]*template.Template),
		log:       log,
	}

	switch cfg.Provider {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SendGrid API key is required")
		}
		s.provider = NewSendGridProvider(cfg.SendGridAPIKey, cfg.From, cfg.FromName)
	case "smtp":
		s.provider = NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.From, cfg.FromName)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.Provider)
	}

	s.templates["password_reset"] = template.Must(template.New("password_reset").Parse(passwordResetTemplate))
	s.templates["welcome"] = template.Must(template.New("welcome").Parse(welcomeTemplate))

	return s, nil
}

// NewServiceWithProvider wires a custom provider, used in tests.
func NewServiceWithProvider(provider Provider, log *zap.Logger) ports.EmailService {
	s := &Service{
		provider:  provider,
		templates: make(map[string]*template.Template),
		log:       log,
	}
	s.templates["password_reset"] = template.Must(template.New("password_reset").Parse(passwordResetTemplate))
	s.templates["welcome"] = template.Must(template.New("welcome").Parse(welcomeTemplate))
	return s
}

func (s *Service) SendPasswordReset(ctx context.Context, to, nome, resetLink string) error {
	return s.sendTemplate(ctx, to, "password_reset", "Redefinição de senha", map[string]interface{}{
		"Nome":     nome,
		"ResetURL": resetLink,
	})
}

func (s *Service) SendWelcome(ctx context.Context, to, nome string) error {
	return s.sendTemplate(ctx, to, "welcome", "Bem-vindo!", map[string]interface{}{
		"Nome": nome,
	})
}

func (s *Service) sendTemplate(ctx context.Context, to, name, subject string, data map[string]interface{}) error {
	tmpl, ok := s.templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	s.log.Info("Sending email",
		zap.String("to", to),
		zap.String("template", name),
	)
	if err := s.provider.Send(ctx, to, subject, buf.String(), true); err != nil {
		s.log.Error("Failed to send email",
			zap.String("to", to),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
