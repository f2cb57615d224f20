package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kleberfca/timeline-project-system/internal/domain"
	"github.com/Kleberfca/timeline-project-system/internal/observability/telemetry"
	"github.com/Kleberfca/timeline-project-system/internal/ports"
	"github.com/Kleberfca/timeline-project-system/pkg/config"
)

const denylistPrefix = "auth:denylist:"

type Service struct {
	userRepo    ports.UserRepository
	cache       ports.Cache
	email       ports.EmailService
	cfg         config.JWTConfig
	frontendURL string
	log         *zap.Logger
}

func NewService(userRepo ports.UserRepository, cache ports.Cache, email ports.EmailService, cfg config.JWTConfig, frontendURL string, log *zap.Logger) ports.AuthService {
	return &Service{
		userRepo:    userRepo,
		cache:       cache,
		email:       email,
		cfg:         cfg,
		frontendURL: frontendURL,
		log:         log,
	}
}

func (s *Service) Login(ctx context.Context, email, senha string) (*domain.Session, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up user on login", zap.Error(err))
		return nil, nil, domain.ErrInvalidCredentials
	}
	if user == nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)); err != nil {
		telemetry.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	if !user.EmailConfirmado {
		telemetry.LoginAttempts.WithLabelValues("email_not_confirmed").Inc()
		return nil, nil, domain.ErrEmailNotConfirmed
	}

	session, err := s.generateSession(user)
	if err != nil {
		return nil, nil, err
	}

	telemetry.LoginAttempts.WithLabelValues("success").Inc()
	return session, user, nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.generateSession(user)
}

// ValidateToken checks signature, expiry and the sign-out denylist, then
// loads the user from the database.
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.parseToken(token, "access")
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if denied, _ := s.cache.Get(ctx, denylistPrefix+token); denied != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// GetSession validates the token locally and returns session data without
// touching the database. Callers that need the full profile use
// ValidateToken instead.
func (s *Service) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := s.parseToken(token, "access")
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Session{
		UserID:      claims.Subject,
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// SignOut denylists the access token until its natural expiry.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token, "access")
	if err != nil {
		// Already invalid, nothing to revoke.
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, denylistPrefix+token, []byte("1"), ttl)
}

// RequestPasswordReset always succeeds from the caller's point of view so
// the endpoint does not leak which emails exist.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := s.signToken(user.ID, "reset", s.cfg.ResetTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/redefinir-senha?token=%s", s.frontendURL, token)
	if err := s.email.SendPasswordReset(ctx, user.Email, user.Nome, link); err != nil {
		s.log.Error("Failed to send password reset email", zap.String("email", email), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, novaSenha string) error {
	claims, err := s.parseToken(token, "reset")
	if err != nil {
		return domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, claims.Subject)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.SenhaHash = string(hash)
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}

func (s *Service) ChangePassword(ctx context.Context, userID, senhaAtual, novaSenha string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senhaAtual)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.SenhaHash = string(hash)
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}

type tokenClaims struct {
	Type string `json:"type"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (s *Service) generateSession(user *domain.User) (*domain.Session, error) {
	expiresAt := time.Now().Add(s.cfg.AccessTTL)

	accessToken, err := s.signToken(user.ID, "access", s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(user.ID, "refresh", s.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *Service) signToken(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) parseToken(tokenStr, wantType string) (*tokenClaims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	if claims.Type != wantType {
		return nil, domain.ErrInvalidCredentials
	}
	return &claims, nil
}
