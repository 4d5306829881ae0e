package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mediport/internal/database"
	rbacDomain "github.com/allisson/mediport/internal/rbac/domain"
	sessionDomain "github.com/allisson/mediport/internal/session/domain"
	sessionUseCase "github.com/allisson/mediport/internal/session/usecase"
	"github.com/allisson/mediport/internal/testutil"
)

type sessionBackend struct {
	name    string
	driver  string
	skip    func(t *testing.T)
	setup   func(t *testing.T) *sql.DB
	cleanup func(t *testing.T, db *sql.DB)
	newRepo func(db *sql.DB) sessionUseCase.SessionRepository
}

var sessionBackends = []sessionBackend{
	{
		name:    "postgres",
		driver:  "postgres",
		skip:    testutil.SkipIfNoPostgres,
		setup:   testutil.SetupPostgresDB,
		cleanup: testutil.CleanupPostgresDB,
		newRepo: func(db *sql.DB) sessionUseCase.SessionRepository { return NewPostgreSQLSessionRepository(db) },
	},
	{
		name:    "mysql",
		driver:  "mysql",
		skip:    testutil.SkipIfNoMySQL,
		setup:   testutil.SetupMySQLDB,
		cleanup: testutil.CleanupMySQLDB,
		newRepo: func(db *sql.DB) sessionUseCase.SessionRepository { return NewMySQLSessionRepository(db) },
	},
}

func TestSessionRepository_Lifecycle_Integration(t *testing.T) {
	for _, backend := range sessionBackends {
		t.Run(backend.name, func(t *testing.T) {
			backend.skip(t)
			db := backend.setup(t)
			defer testutil.TeardownDB(t, db)
			defer backend.cleanup(t, db)

			ctx := context.Background()
			repo := backend.newRepo(db)
			now := time.Now().UTC().Truncate(time.Second)

			session := &sessionDomain.Session{
				ID:             uuid.Must(uuid.NewV7()),
				TokenHash:      "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
				Username:       "dr.house",
				Role:           rbacDomain.RoleDoctor,
				EncryptedToken: []byte{0x01, 0x02, 0x03},
				TokenType:      "Bearer",
				ExpiresAt:      now.Add(time.Hour),
				CreatedAt:      now,
			}
			require.NoError(t, repo.Create(ctx, session))

			found, err := repo.GetByTokenHash(ctx, session.TokenHash)
			require.NoError(t, err)
			assert.Equal(t, session.ID, found.ID)
			assert.Equal(t, "dr.house", found.Username)
			assert.Equal(t, rbacDomain.RoleDoctor, found.Role)
			assert.Equal(t, session.EncryptedToken, found.EncryptedToken)
			assert.True(t, found.ExpiresAt.Equal(session.ExpiresAt))
			assert.Nil(t, found.RevokedAt)

			_, err = repo.GetByTokenHash(ctx, "unknown")
			assert.ErrorIs(t, err, sessionDomain.ErrSessionNotFound)

			require.NoError(t, repo.Revoke(ctx, session.ID, now))
			assert.ErrorIs(t, repo.Revoke(ctx, session.ID, now), sessionDomain.ErrSessionNotFound)

			found, err = repo.GetByTokenHash(ctx, session.TokenHash)
			require.NoError(t, err)
			require.NotNil(t, found.RevokedAt)
			assert.False(t, found.IsActive(now))
		})
	}
}

func TestSessionRepository_DeleteExpired_Integration(t *testing.T) {
	for _, backend := range sessionBackends {
		t.Run(backend.name, func(t *testing.T) {
			backend.skip(t)
			db := backend.setup(t)
			defer testutil.TeardownDB(t, db)
			defer backend.cleanup(t, db)

			ctx := context.Background()
			repo := backend.newRepo(db)
			now := time.Now().UTC()

			testutil.CreateTestSession(t, db, backend.driver, "old", now.Add(-48*time.Hour))
			testutil.CreateTestSession(t, db, backend.driver, "recent", now.Add(-time.Hour))
			testutil.CreateTestSession(t, db, backend.driver, "active", now.Add(time.Hour))

			count, err := repo.DeleteExpired(ctx, now.Add(-24*time.Hour), true)
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)

			count, err = repo.DeleteExpired(ctx, now, false)
			require.NoError(t, err)
			assert.Equal(t, int64(2), count)

			count, err = repo.DeleteExpired(ctx, now, true)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestSessionRepository_RevokeInTransaction_Integration(t *testing.T) {
	for _, backend := range sessionBackends {
		t.Run(backend.name, func(t *testing.T) {
			backend.skip(t)
			db := backend.setup(t)
			defer testutil.TeardownDB(t, db)
			defer backend.cleanup(t, db)

			ctx := context.Background()
			repo := backend.newRepo(db)
			sessionID := testutil.CreateTestSession(t, db, backend.driver, "nurse.joy", time.Now().Add(time.Hour))

			rollback := assert.AnError
			err := database.NewTxManager(db).WithTx(ctx, func(ctx context.Context) error {
				require.NoError(t, repo.Revoke(ctx, sessionID, time.Now().UTC()))
				return rollback
			})
			require.ErrorIs(t, err, rollback)

			assert.NoError(t, repo.Revoke(ctx, sessionID, time.Now().UTC()), "rolled back revoke must not persist")
		})
	}
}
