package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	apperrors "github.com/allisson/mediport/internal/errors"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	"github.com/allisson/mediport/internal/rbac/http/dto"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	sessionUseCase "github.com/allisson/mediport/internal/session/usecase"
)

// CredentialStore is the operator's local session store.
type CredentialStore interface {
	sessionDomain.Store
	SetMany(ctx context.Context, entries map[string]string) error
}

// RunLogin authenticates against the remote API and saves the bearer credential and the
// reported identity in credentials. An empty password is read from streams.Reader.
func RunLogin(
	ctx context.Context,
	remote sessionUseCase.RemoteAuthenticator,
	policy *rbacDomain.Policy,
	credentials CredentialStore,
	logger *slog.Logger,
	streams IOTuple,
	username string,
	password string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "username is required")
	}

	if password == "" {
		var err error
		password, err = promptPassword(streams, "Password: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "password is required")
	}

	credential, err := remote.Login(ctx, username, password)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthorized) || apperrors.Is(err, apperrors.ErrInvalidInput) {
			return sessionDomain.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to log in: %w", err)
	}

	identity, err := remote.Me(ctx, credential)
	if err != nil {
		return fmt.Errorf("failed to resolve operator identity: %w", err)
	}
	if identity.Username != "" {
		username = identity.Username
	}

	if !policy.IsKnownRole(identity.Role) {
		logger.Warn("remote API reported an unknown role, session holds no capabilities",
			slog.String("username", username),
			slog.String("role", string(identity.Role)))
	}

	// Clear first so a stale alternate token key cannot shadow the new one.
	if err := credentials.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset session store: %w", err)
	}
	if err := credentials.SetMany(ctx, map[string]string{
		sessionDomain.KeyAccessToken: credential.Token,
		sessionDomain.KeyTokenType:   credential.Type,
		sessionDomain.KeyUsername:    username,
		sessionDomain.KeyRole:        string(identity.Role),
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("operator logged in", slog.String("username", username), slog.String("role", string(identity.Role)))

	return writeIdentity(streams.Writer, policy, username, identity.Role, format)
}

// RunLogout forgets the saved credential. Logging out without a session is not an error.
func RunLogout(ctx context.Context, credentials sessionDomain.Store, writer io.Writer) error {
	if err := credentials.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	_, err := fmt.Fprintln(writer, "Logged out")
	return err
}

// RunWhoAmI prints the operator the saved session belongs to and their capabilities.
func RunWhoAmI(
	ctx context.Context,
	credentials sessionDomain.Getter,
	policy *rbacDomain.Policy,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	principal, err := loadPrincipal(ctx, credentials)
	if err != nil {
		return err
	}

	return writeIdentity(writer, policy, principal.Username, principal.Role, format)
}

// loadPrincipal reads the saved session, turning a missing credential into a hint.
func loadPrincipal(ctx context.Context, credentials sessionDomain.Getter) (*sessionDomain.Principal, error) {
	principal, err := sessionDomain.LoadPrincipal(ctx, credentials)
	if err != nil {
		if apperrors.Is(err, sessionDomain.ErrNoCredential) {
			return nil, fmt.Errorf("not logged in, run the login command first: %w", err)
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return principal, nil
}

// IdentityResolver looks up the operator behind a credential on the remote API.
type IdentityResolver interface {
	Me(ctx context.Context, credential sessionDomain.Credential) (*sessionDomain.Identity, error)
}

// verifiedPrincipal loads the saved credential and takes the role from the remote API,
// never from the editable session document.
func verifiedPrincipal(
	ctx context.Context,
	credentials sessionDomain.Getter,
	identities IdentityResolver,
) (*sessionDomain.Principal, error) {
	principal, err := loadPrincipal(ctx, credentials)
	if err != nil {
		return nil, err
	}

	identity, err := identities.Me(ctx, principal.Credential)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUnauthorized) {
			return nil, fmt.Errorf("saved session was rejected, run the login command again: %w", err)
		}
		return nil, fmt.Errorf("failed to resolve operator identity: %w", err)
	}

	principal.Role = identity.Role
	if identity.Username != "" {
		principal.Username = identity.Username
	}
	return principal, nil
}

type identityOutput struct {
	Username     string   `json:"username"`
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

func writeIdentity(writer io.Writer, policy *rbacDomain.Policy, username string, role rbacDomain.Role, format string) error {
	out := identityOutput{
		Username:     username,
		Role:         string(role),
		Capabilities: dto.CapabilityStrings(policy.Capabilities(role)),
	}

	if format == FormatJSON {
		return writeJSON(writer, out)
	}

	capabilities := "(none)"
	if len(out.Capabilities) > 0 {
		capabilities = strings.Join(out.Capabilities, ", ")
	}
	_, err := fmt.Fprintf(writer, "Logged in as %s (%s)\nCapabilities: %s\n", out.Username, out.Role, capabilities)
	return err
}

// promptPassword reads a password without echo when streams.Reader is a terminal,
// and falls back to promptLine for pipes and files.
func promptPassword(streams IOTuple, prompt string) (string, error) {
	file, ok := streams.Reader.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return promptLine(streams, prompt)
	}

	if _, err := fmt.Fprint(streams.Writer, prompt); err != nil {
		return "", err
	}
	password, err := term.ReadPassword(int(file.Fd()))
	_, _ = fmt.Fprintln(streams.Writer)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// promptLine writes prompt and reads one line from streams.Reader.
func promptLine(streams IOTuple, prompt string) (string, error) {
	if _, err := fmt.Fprint(streams.Writer, prompt); err != nil {
		return "", err
	}
	scanner := bufio.NewScanner(streams.Reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", nil
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}
