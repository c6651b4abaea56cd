package migrations

import (
	"github.com/NeuralTrust/TrustPost/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250304_unique_audit_resolution",
		Name: "Allow a single resolution per reviewed audit entry",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE UNIQUE INDEX IF NOT EXISTS idx_audit_logs_resolves_id
					ON public.audit_logs (resolves_id)
					WHERE resolves_id IS NOT NULL;
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP INDEX IF EXISTS public.idx_audit_logs_resolves_id;`).Error
		},
	})
}
