package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/communityhub/platform-api/internal/api/metrics"
	"github.com/communityhub/platform-api/internal/auth"
	"github.com/communityhub/platform-api/internal/core/domain"
	"github.com/communityhub/platform-api/internal/core/ports"
)

// LoginLimiter abstracts the failed-login throttle (Redis).
type LoginLimiter interface {
	// TooMany reports whether loginKey has exceeded the failure budget.
	TooMany(ctx context.Context, loginKey string) (bool, error)
	RecordFailure(ctx context.Context, loginKey string) error
	Reset(ctx context.Context, loginKey string) error
}

// AuthConfig tunes the auth flows.
type AuthConfig struct {
	TokenTTL    time.Duration // default 24h
	DefaultRole string        // default domain.RoleUser
}

// AuthService implements signup, login, profile and admin user management.
type AuthService struct {
	users       ports.UserRepository
	hasher      *auth.Hasher
	tokens      *auth.TokenService
	limiter     LoginLimiter
	audit       ports.AuditRecorder
	tokenTTL    time.Duration
	defaultRole string
	log         zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenService,
	limiter LoginLimiter,
	audit ports.AuditRecorder,
	cfg AuthConfig,
	log zerolog.Logger,
) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.DefaultRole == "" {
		cfg.DefaultRole = domain.RoleUser
	}
	return &AuthService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		limiter:     limiter,
		audit:       audit,
		tokenTTL:    cfg.TokenTTL,
		defaultRole: cfg.DefaultRole,
		log:         log,
	}
}

// Signup creates a credential record. The duplicate pre-check and the unique
// index behind UserRepository.Create both surface as ErrEmailTaken, so a
// racing signup loses cleanly regardless of which check catches it.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := in.Role
	if role == "" {
		role = s.defaultRole
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Name:         in.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(role).Inc()
	s.record(domain.AuditSignup, created.ID, "", "role="+role)
	s.log.Info().Str("user_id", created.ID).Str("role", role).Msg("user registered")
	return created, nil
}

// Login validates credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if blocked, err := s.limiter.TooMany(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter unavailable, proceeding")
	} else if blocked {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.loginFailed(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.loginFailed(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset login limiter")
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.record(domain.AuditLoginOK, user.ID, "", "")
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	return s.users.UpdateName(ctx, userID, name)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ChangeRole moves a user to another role in the closed set. The new role
// takes effect on the user's next login; outstanding tokens keep their
// issued role snapshot until they expire.
func (s *AuthService) ChangeRole(ctx context.Context, actorID, userID, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	updated, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	s.record(domain.AuditRoleChange, userID, actorID, "role="+role)
	s.log.Info().Str("user_id", userID).Str("actor_id", actorID).Str("role", role).Msg("role changed")
	return updated, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.record(domain.AuditUserDeleted, userID, actorID, "")
	return nil
}

func (s *AuthService) loginFailed(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
	metrics.LoginsTotal.WithLabelValues("failed").Inc()
	s.record(domain.AuditLoginFailed, email, "", "")
}

func (s *AuthService) record(action, subject, actorID, detail string) {
	s.audit.Record(ports.AuditEntry{
		Action:  action,
		Subject: subject,
		ActorID: actorID,
		Detail:  detail,
		At:      time.Now().UTC(),
	})
}
