package migrations

import (
	"github.com/NeuralTrust/TrustPost/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250302_create_posts_and_comments",
		Name: "Create posts and comments tables keyed by submission",

		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS public.posts (
					id            UUID PRIMARY KEY,
					submission_id UUID NOT NULL UNIQUE,
					author_id     TEXT NOT NULL,
					title         TEXT NOT NULL,
					content       TEXT NOT NULL DEFAULT '',
					media_keys    TEXT[] NOT NULL DEFAULT '{}',
					status        TEXT NOT NULL,
					created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_posts_author ON public.posts (author_id);
				CREATE INDEX IF NOT EXISTS idx_posts_status ON public.posts (status);

				CREATE TABLE IF NOT EXISTS public.comments (
					id            UUID PRIMARY KEY,
					submission_id UUID NOT NULL UNIQUE,
					post_id       UUID NOT NULL REFERENCES public.posts(id) ON DELETE CASCADE,
					author_id     TEXT NOT NULL,
					content       TEXT NOT NULL,
					status        TEXT NOT NULL,
					created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_comments_post ON public.comments (post_id);
			`).Error
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS public.comments; DROP TABLE IF EXISTS public.posts;`).Error
		},
	})
}
