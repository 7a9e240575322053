package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MigrateLegacyPasswords hashes any plaintext password left behind by
// the old system. Runs once at startup; after it completes, login is
// bcrypt-only. A row that fails to migrate is logged and left alone so
// the next start retries it.
func MigrateLegacyPasswords(ctx context.Context, repo UserRepository, logger *zap.Logger) error {
	users, err := repo.ListLegacyPasswords(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	migrated := 0
	for _, user := range users {
		hashed, err := bcrypt.GenerateFromPassword(
			[]byte(user.Password),
			bcrypt.DefaultCost,
		)
		if err != nil {
			logger.Warn("failed to hash legacy password",
				zap.String("userID", user.ID),
				zap.Error(err),
			)
			continue
		}

		if err := repo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
			logger.Warn("failed to update legacy password",
				zap.String("userID", user.ID),
				zap.Error(err),
			)
			continue
		}
		migrated++
	}

	logger.Info("legacy password migration finished",
		zap.Int("candidates", len(users)),
		zap.Int("migrated", migrated),
	)
	return nil
}
