package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/repository"
)

type Config struct {
	Secret     string
	Issuer     string
	SessionTTL time.Duration
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      Config
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, cfg Config, logger *zap.Logger) *UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login verifies the credentials, caches a session and issues a signed token
// carrying the user's id, fixed role and session id.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, "", domain.WrapError(domain.ErrCodeUnauthorized, "invalid credentials", nil)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.WrapError(domain.ErrCodeUnauthorized, "invalid credentials", nil)
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.SessionTTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"role":       string(user.Role),
		"session_id": session.ID,
		"iss":        uc.cfg.Issuer,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.cfg.Secret))
	if err != nil {
		return nil, "", err
	}

	uc.logger.Info("session created",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))
	return user, token, nil
}

// GetSession resolves a session id, expiring stale entries on read.
func (uc *UseCase) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Logout revokes the session. Terminal for the dashboard shell.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}
