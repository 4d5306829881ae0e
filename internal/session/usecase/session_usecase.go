package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/mediport/internal/audit/domain"
	"github.com/allisson/mediport/internal/config"
	"github.com/allisson/mediport/internal/database"
	apperrors "github.com/allisson/mediport/internal/errors"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	sessionService "github.com/allisson/mediport/internal/session/service"
)

// logoutPath is recorded on the audit entry of a logout.
const logoutPath = "/v1/auth/logout"

// sessionUseCase implements SessionUseCase.
type sessionUseCase struct {
	config       *config.Config
	txManager    database.TxManager
	sessionRepo  SessionRepository
	remote       RemoteAuthenticator
	auditLogs    AuditRecorder
	tokenService sessionService.TokenService
	cipher       sessionService.CredentialCipher
	policy       *rbacDomain.Policy
	logger       *slog.Logger
}

// Login authenticates against the remote API, asks it who the operator is and opens a
// session for the reported role. A role unknown to the policy still logs in but holds
// no capabilities.
func (s *sessionUseCase) Login(
	ctx context.Context,
	input *sessionDomain.LoginInput,
) (*sessionDomain.LoginOutput, error) {
	credential, err := s.remote.Login(ctx, input.Username, input.Password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthorized) || apperrors.Is(err, apperrors.ErrInvalidInput) {
			return nil, sessionDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	identity, err := s.remote.Me(ctx, credential)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthorized) {
			return nil, sessionDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	username := identity.Username
	if username == "" {
		username = input.Username
	}

	if !s.policy.IsKnownRole(identity.Role) {
		s.logger.Warn("remote API reported an unknown role, session holds no capabilities",
			slog.String("username", username),
			slog.String("role", string(identity.Role)))
	}

	encryptedToken, err := s.cipher.Encrypt(ctx, credential.Token)
	if err != nil {
		return nil, err
	}

	plainToken, tokenHash, err := s.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &sessionDomain.Session{
		ID:             uuid.Must(uuid.NewV7()),
		TokenHash:      tokenHash,
		Username:       username,
		Role:           identity.Role,
		EncryptedToken: encryptedToken,
		TokenType:      credential.Type,
		ExpiresAt:      now.Add(s.config.SessionExpiration),
		CreatedAt:      now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return &sessionDomain.LoginOutput{
		SessionID:    session.ID,
		PlainToken:   plainToken,
		TokenType:    sessionDomain.DefaultTokenType,
		ExpiresAt:    session.ExpiresAt,
		Username:     session.Username,
		Role:         session.Role,
		Capabilities: s.policy.Capabilities(session.Role),
	}, nil
}

func (s *sessionUseCase) Authenticate(ctx context.Context, plainToken string) (*sessionDomain.Session, error) {
	session, err := s.sessionRepo.GetByTokenHash(ctx, s.tokenService.HashToken(plainToken))
	if err != nil {
		if apperrors.Is(err, sessionDomain.ErrSessionNotFound) {
			return nil, sessionDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !session.IsActive(time.Now().UTC()) {
		return nil, sessionDomain.ErrInvalidCredentials
	}

	token, err := s.cipher.Decrypt(ctx, session.EncryptedToken)
	if err != nil {
		return nil, err
	}
	session.Token = token

	return session, nil
}

func (s *sessionUseCase) Logout(ctx context.Context, session *sessionDomain.Session) error {
	return s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.sessionRepo.Revoke(ctx, session.ID, time.Now().UTC()); err != nil {
			return err
		}

		sessionID := session.ID
		return s.auditLogs.Record(ctx, &auditDomain.AuditLog{
			SessionID: &sessionID,
			Username:  session.Username,
			Role:      session.Role,
			Path:      logoutPath,
			Method:    http.MethodPost,
			Allowed:   true,
		})
	})
}

func (s *sessionUseCase) CleanExpired(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidInput, "days must be a positive number, got: %d", days)
	}

	olderThan := time.Now().UTC().AddDate(0, 0, -days)
	return s.sessionRepo.DeleteExpired(ctx, olderThan, dryRun)
}

// NewSessionUseCase creates a new SessionUseCase with the provided dependencies.
func NewSessionUseCase(
	cfg *config.Config,
	txManager database.TxManager,
	sessionRepo SessionRepository,
	remote RemoteAuthenticator,
	auditLogs AuditRecorder,
	tokenService sessionService.TokenService,
	cipher sessionService.CredentialCipher,
	policy *rbacDomain.Policy,
	logger *slog.Logger,
) SessionUseCase {
	return &sessionUseCase{
		config:       cfg,
		txManager:    txManager,
		sessionRepo:  sessionRepo,
		remote:       remote,
		auditLogs:    auditLogs,
		tokenService: tokenService,
		cipher:       cipher,
		policy:       policy,
		logger:       logger,
	}
}
