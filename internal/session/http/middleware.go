package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/mediport/internal/errors"
	"github.com/allisson/mediport/internal/httputil"
	sessionUseCase "github.com/allisson/mediport/internal/session/usecase"
)

// AuthenticationMiddleware resolves the "Bearer <session token>" Authorization header
// (scheme matched case-insensitively) to an active session and stores it in the request
// context. Missing, malformed, unknown, expired and revoked tokens get 401.
func AuthenticationMiddleware(
	sessionUseCase sessionUseCase.SessionUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		plainToken := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if plainToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		session, err := sessionUseCase.Authenticate(c.Request.Context(), plainToken)
		if err != nil {
			logger.Debug("authentication failed", slog.Any("error", err))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), session))

		logger.Debug("authentication successful",
			slog.String("session_id", session.ID.String()),
			slog.String("username", session.Username),
			slog.String("role", string(session.Role)))

		c.Next()
	}
}
