package migrations

import (
	"github.com/NeuralTrust/TrustPost/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250303_create_moderation_invocations",
		Name: "Create moderation_invocations usage table",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS public.moderation_invocations (
					id                UUID PRIMARY KEY,
					author_id         TEXT NOT NULL DEFAULT '',
					content_type      TEXT NOT NULL,
					source            TEXT NOT NULL,
					provider          TEXT NOT NULL DEFAULT '',
					model             TEXT NOT NULL DEFAULT '',
					decision          TEXT NOT NULL,
					prompt_tokens     BIGINT NOT NULL DEFAULT 0,
					completion_tokens BIGINT NOT NULL DEFAULT 0,
					cost_usd          DOUBLE PRECISION NOT NULL DEFAULT 0,
					latency_ms        BIGINT NOT NULL DEFAULT 0,
					error             TEXT NOT NULL DEFAULT '',
					created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_moderation_invocations_created_at
					ON public.moderation_invocations (created_at);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS public.moderation_invocations;`).Error
		},
	})
}
