package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/plumeria/retreat-api/internal/config"
	"github.com/plumeria/retreat-api/internal/domain/catalog"
	"github.com/plumeria/retreat-api/internal/domain/gallery"
	"github.com/plumeria/retreat-api/internal/pkg/database"
	"github.com/plumeria/retreat-api/internal/pkg/password"
)

// Seeds the catalog, gallery and bootstrap admin. Safe to run more
// than once: catalog rows are upserted, gallery and admin rows are
// only inserted when missing.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required for seeding")
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	seedCatalog(ctx, db)
	seedGallery(ctx, db)
	seedAdmin(ctx, db, cfg)

	log.Info().Msg("Seeding complete")
}

func seedCatalog(ctx context.Context, db *sqlx.DB) {
	for _, a := range catalog.Fixtures.Accommodations {
		_, err := db.ExecContext(ctx, `
			INSERT INTO accommodations (
				id, type, title, description, price, capacity, features,
				image_url, has_ac, has_attached_bath, available_rooms, available
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO UPDATE SET
				type = EXCLUDED.type, title = EXCLUDED.title,
				description = EXCLUDED.description, price = EXCLUDED.price,
				capacity = EXCLUDED.capacity, features = EXCLUDED.features,
				image_url = EXCLUDED.image_url, has_ac = EXCLUDED.has_ac,
				has_attached_bath = EXCLUDED.has_attached_bath,
				available_rooms = EXCLUDED.available_rooms,
				available = EXCLUDED.available
		`, a.ID, a.Type, a.Title, a.Description, a.Price, a.Capacity, a.Features,
			a.ImageURL, a.HasAC, a.HasAttachedBath, a.AvailableRooms, a.Available)
		if err != nil {
			log.Fatal().Err(err).Int64("id", a.ID).Msg("Failed to seed accommodation")
		}
	}

	for _, m := range catalog.Fixtures.MealPlans {
		_, err := db.ExecContext(ctx, `
			INSERT INTO meal_plans (id, type, title, description, price, includes, available)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				type = EXCLUDED.type, title = EXCLUDED.title,
				description = EXCLUDED.description, price = EXCLUDED.price,
				includes = EXCLUDED.includes, available = EXCLUDED.available
		`, m.ID, m.Type, m.Title, m.Description, m.Price, m.Includes, m.Available)
		if err != nil {
			log.Fatal().Err(err).Int64("id", m.ID).Msg("Failed to seed meal plan")
		}
	}

	for _, a := range catalog.Fixtures.Activities {
		_, err := db.ExecContext(ctx, `
			INSERT INTO activities (
				id, title, description, price, image_url, duration, max_participants, available
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title, description = EXCLUDED.description,
				price = EXCLUDED.price, image_url = EXCLUDED.image_url,
				duration = EXCLUDED.duration,
				max_participants = EXCLUDED.max_participants,
				available = EXCLUDED.available
		`, a.ID, a.Title, a.Description, a.Price, a.ImageURL, a.Duration, a.MaxParticipants, a.Available)
		if err != nil {
			log.Fatal().Err(err).Int64("id", a.ID).Msg("Failed to seed activity")
		}
	}

	log.Info().
		Int("accommodations", len(catalog.Fixtures.Accommodations)).
		Int("meal_plans", len(catalog.Fixtures.MealPlans)).
		Int("activities", len(catalog.Fixtures.Activities)).
		Msg("Catalog seeded")
}

func seedGallery(ctx context.Context, db *sqlx.DB) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM gallery_images`); err != nil {
		log.Fatal().Err(err).Msg("Failed to count gallery images")
	}
	if count > 0 {
		log.Info().Int("existing", count).Msg("Gallery already seeded, skipping")
		return
	}

	for i, f := range gallery.Fixtures {
		_, err := db.ExecContext(ctx, `
			INSERT INTO gallery_images (
				id, category, alt, url, thumbnail_url,
				storage_path, thumb_path, width, height, sort_order, created_at
			) VALUES ($1, $2, $3, $4, $5, '', '', 0, 0, $6, NOW())
		`, uuid.New(), f.Category, f.Alt, f.URL, f.URL, i)
		if err != nil {
			log.Fatal().Err(err).Str("alt", f.Alt).Msg("Failed to seed gallery image")
		}
	}

	log.Info().Int("images", len(gallery.Fixtures)).Msg("Gallery seeded")
}

func seedAdmin(ctx context.Context, db *sqlx.DB, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		log.Warn().Msg("No ADMIN_PASSWORD set, skipping admin seed")
		return
	}

	var exists bool
	err := db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM admins WHERE LOWER(email) = LOWER($1))`, cfg.AdminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check for existing admin")
	}
	if exists {
		log.Info().Str("email", cfg.AdminEmail).Msg("Admin already exists, skipping")
		return
	}

	hash, err := password.Hash(cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash admin password")
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO admins (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`, uuid.New(), cfg.AdminEmail, hash, "Administrator")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin")
	}

	log.Info().Str("email", cfg.AdminEmail).Msg("Admin seeded")
}
