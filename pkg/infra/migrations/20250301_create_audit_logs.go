package migrations

import (
	"github.com/NeuralTrust/TrustPost/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250301_create_audit_logs",
		Name: "Create append-only audit_logs table",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS public.audit_logs (
					id            UUID PRIMARY KEY,
					action        TEXT NOT NULL,
					target_type   TEXT NOT NULL,
					target_id     TEXT NOT NULL DEFAULT '',
					actor_id      TEXT NOT NULL DEFAULT '',
					reason        TEXT NOT NULL DEFAULT '',
					categories    TEXT[] NOT NULL DEFAULT '{}',
					confidence    DOUBLE PRECISION NOT NULL DEFAULT 0,
					source        TEXT NOT NULL DEFAULT '',
					resolved      BOOLEAN NOT NULL DEFAULT FALSE,
					resolves_id   UUID,
					model         TEXT NOT NULL DEFAULT '',
					total_tokens  BIGINT NOT NULL DEFAULT 0,
					cost_usd      DOUBLE PRECISION NOT NULL DEFAULT 0,
					client_ip     TEXT NOT NULL DEFAULT '',
					user_agent    TEXT NOT NULL DEFAULT '',
					device_family TEXT NOT NULL DEFAULT '',
					created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON public.audit_logs (created_at);
				CREATE INDEX IF NOT EXISTS idx_audit_logs_action ON public.audit_logs (action);
				CREATE INDEX IF NOT EXISTS idx_audit_logs_target ON public.audit_logs (target_type, target_id);
			`).Error; err != nil {
				return err
			}

			// Entries are immutable once written.
			return db.Exec(`
				CREATE OR REPLACE FUNCTION public.audit_logs_immutable() RETURNS trigger AS $$
				BEGIN
					RAISE EXCEPTION 'audit_logs is append-only';
				END;
				$$ LANGUAGE plpgsql;

				DROP TRIGGER IF EXISTS audit_logs_no_update ON public.audit_logs;
				CREATE TRIGGER audit_logs_no_update
					BEFORE UPDATE OR DELETE ON public.audit_logs
					FOR EACH ROW EXECUTE FUNCTION public.audit_logs_immutable();
			`).Error
		},

		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP TABLE IF EXISTS public.audit_logs;`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP FUNCTION IF EXISTS public.audit_logs_immutable();`).Error
		},
	})
}
